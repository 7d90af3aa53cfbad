package config

var Network string

var (
	NodeURL      string
	Registry     string
	Offchain     bool
	MaxRedirects int
)
