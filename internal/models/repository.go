package models

// ABIPlaceholder is resolved by pkg(8) to the running system's ABI string.
// It is written to the configuration file verbatim.
const ABIPlaceholder = "${ABI}"

// RepositoryEntry is a named package mirror with its two URL templates
type RepositoryEntry struct {
	Name      string `yaml:"name"`
	LatestURL string `yaml:"latest_url"` // Primary package set
	BaseURL   string `yaml:"base_url"`   // Base system package set
}

// Result is the outcome of a repository selection as shown to the user
type Result struct {
	Success bool
	Message string
	Err     error
}

// StationConfig contains the runtime configuration of the tool
type StationConfig struct {
	// Target
	ConfigFile string // pkg(8) repository configuration file to rewrite

	// Mirror list
	ReposFile    string // Optional YAML mirror list replacing the built-in table
	ReposKeyring string // OpenPGP keyring the mirror list signature must verify against

	// Rendering
	BlockName  string // Fixed block name; empty means blocks are keyed by mirror name
	PubkeyPath string // Path written into the pubkey field

	// Safety
	Backup bool // Keep a gzip copy of the previous configuration

	// Logging
	LogFile string
}
