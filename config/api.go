package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public API paths (menu board and kiosk menu are read-only, no auth)
	return []string{"/api/menu", "/api/menu/:id", "/graphql"}
}
