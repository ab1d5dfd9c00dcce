package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the identity a request acts under. The dashboard is
// single-user-oriented, so this is mostly for log attribution.
type Scope struct {
	UserID string
}
