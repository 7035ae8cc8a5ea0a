package app

import "context"

// GenerateRunner defines the interface for code generation application logic
type GenerateRunner interface {
	// Run generates codes as described by opts and writes them out
	Run(ctx context.Context, opts *GenerateOptions) error
	// RunInteractive asks the user for the options, then runs
	RunInteractive(ctx context.Context) error
}

// CheckRunner defines the interface for duplicate check application logic
type CheckRunner interface {
	// Run scans a file for duplicate codes and writes a report
	Run(ctx context.Context, opts *CheckOptions) (*CheckResult, error)
}

var (
	_ GenerateRunner = (*GenerateApp)(nil)
	_ CheckRunner    = (*CheckApp)(nil)
)
