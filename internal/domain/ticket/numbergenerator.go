package ticket

import (
	"context"
	"fmt"
	"time"
)

// NumberGenerator issues human-readable ticket numbers in the form
// TKT-YYYY-NNNN where NNNN is a zero-padded per-year sequence.
type NumberGenerator struct {
	repo Repository
}

func NewNumberGenerator(repo Repository) *NumberGenerator {
	return &NumberGenerator{repo: repo}
}

func (g *NumberGenerator) Next(ctx context.Context) (string, error) {
	year := time.Now().Year()

	count, err := g.repo.CountByYear(ctx, year)
	if err != nil {
		return "", fmt.Errorf("failed to count tickets for year %d: %w", year, err)
	}

	return FormatNumber(year, count+1), nil
}

func FormatNumber(year int, sequence int64) string {
	return fmt.Sprintf("TKT-%d-%04d", year, sequence)
}
