package model

// Scope carries the authenticated caller's identity through every use case call.
// FirmID is the tenant boundary: repositories must never return rows outside it.
type Scope struct {
	UserID string
	FirmID string
	Role   string
}

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
