package config

import "strings"

type AsaasEnvironment string

const (
	AsaasSandbox    AsaasEnvironment = "sandbox"
	AsaasProduction AsaasEnvironment = "production"
)

const (
	productionAPIURL  = "https://api.asaas.com/v3"
	productionBaseURL = "https://www.asaas.com"
	sandboxAPIURL     = "https://api-sandbox.asaas.com/v3"
	sandboxBaseURL    = "https://sandbox.asaas.com"

	defaultAppURL = "http://localhost:5173"
)

// AsaasSettings is everything a request needs to talk to the processor.
type AsaasSettings struct {
	APIKey      string
	APIURL      string
	BaseURL     string
	AppURL      string
	Environment AsaasEnvironment
}

// HasAPIKey reports whether requests can be authenticated at all.
func (s AsaasSettings) HasAPIKey() bool {
	return s.APIKey != ""
}

func (s AsaasSettings) IsProduction() bool {
	return s.Environment == AsaasProduction
}

// ResolveAsaas derives the processor settings from an environment mapping.
// It never fails: unknown environments resolve to production and a missing
// API key is left for the caller to reject.
func ResolveAsaas(environ map[string]string) AsaasSettings {
	settings := AsaasSettings{
		APIKey:      lookup(environ, "ASAAS_API_KEY", "VITE_ASAAS_API_KEY"),
		AppURL:      strings.TrimRight(lookup(environ, "APP_URL", "VITE_APP_URL"), "/"),
		Environment: AsaasProduction,
		APIURL:      productionAPIURL,
		BaseURL:     productionBaseURL,
	}

	if settings.AppURL == "" {
		settings.AppURL = defaultAppURL
	}

	if strings.EqualFold(lookup(environ, "ASAAS_ENV", "VITE_ASAAS_ENV"), string(AsaasSandbox)) {
		settings.Environment = AsaasSandbox
		settings.APIURL = sandboxAPIURL
		settings.BaseURL = sandboxBaseURL
	}

	return settings
}

func lookup(environ map[string]string, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(environ[key]); value != "" {
			return value
		}
	}
	return ""
}
