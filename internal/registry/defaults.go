package registry

import "github.com/ghostbsd/software-properties-station/internal/models"

// builtin is the mirror table shipped with the tool
var builtin = []models.RepositoryEntry{
	{
		Name:      "GhostBSD",
		LatestURL: "https://pkg.ghostbsd.org/unstable/${ABI}/latest",
		BaseURL:   "https://pkg.ghostbsd.org/unstable/${ABI}/base",
	},
	{
		Name:      "GhostBSD_Canada",
		LatestURL: "https://pkg.ca.ghostbsd.org/unstable/${ABI}/latest",
		BaseURL:   "https://pkg.ca.ghostbsd.org/unstable/${ABI}/base",
	},
	{
		Name:      "GhostBSD_France",
		LatestURL: "https://pkg.fr.ghostbsd.org/unstable/${ABI}/latest",
		BaseURL:   "https://pkg.fr.ghostbsd.org/unstable/${ABI}/base",
	},
}

// Default returns the built-in registry
func Default() *Registry {
	r, err := New(builtin...)
	if err != nil {
		// builtin is static; this only fires if the table above is edited badly
		panic(err)
	}
	return r
}
