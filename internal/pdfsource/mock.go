package pdfsource

import "fjacquet/balance-rli/internal/models"

// MockSource implements the extractor's page source for testing purposes.
// It returns predefined pages instead of reading an actual PDF file.
type MockSource struct {
	MockPages []models.Page
	MockErr   error
}

// NewMockSource creates a new MockSource with the given mock data.
func NewMockSource(pages []models.Page, err error) *MockSource {
	return &MockSource{MockPages: pages, MockErr: err}
}

// Pages returns the predefined mock pages or error.
func (s *MockSource) Pages() ([]models.Page, error) {
	if s.MockErr != nil {
		return nil, s.MockErr
	}
	return s.MockPages, nil
}
