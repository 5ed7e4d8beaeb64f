// FILE: lixenwraith/configure/example/main.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/configure"
)

// SiteConfig is the typed view an application keeps of its document.
type SiteConfig struct {
	DocRoot    string        `config:"docRoot"`
	Listen     string        `config:"listen"`
	CacheTTL   time.Duration `config:"cacheTTL"`
	IndexFiles []string      `config:"indexFiles"`
	DirListing bool          `config:"dirListing"`
}

func main() {
	// =========================================================================
	// PART 1: SETUP
	// A throwaway directory stands in for the site root.
	// =========================================================================
	siteRoot, err := os.MkdirTemp("", "configure-example-*")
	if err != nil {
		log.Fatalf("❌ Failed to create site root: %v", err)
	}
	defer os.RemoveAll(siteRoot)
	log.Printf("✅ Site root at %s", siteRoot)

	// =========================================================================
	// PART 2: BUILD WITH OVERRIDES
	// Defaults come first, environment next, explicit values last.
	// =========================================================================
	overrides := configure.OverridesFromEnv("SITE_", os.Environ())
	overrides["docRoot"] = siteRoot
	overrides["listen"] = ":8080"
	overrides["cacheTTL"] = "5m"
	overrides["indexFiles"] = "index.html,index.htm"

	builder := configure.NewBuilder().
		WithValidator(func(doc configure.Document) error {
			// Application-specific check layered on top of the docRoot check.
			if _, err := doc.String("listen"); err != nil {
				return errors.New("listen address is required")
			}
			return nil
		})

	result := builder.Build(overrides)
	doc, ok := result.Config()
	if !ok {
		log.Fatalf("❌ Configuration rejected: %s", result.Reason())
	}

	var site SiteConfig
	if err := doc.Decode(&site); err != nil {
		log.Fatalf("❌ Failed to decode configuration: %v", err)
	}
	log.Printf("✅ Serving %s on %s (cache %s, index %v)",
		site.DocRoot, site.Listen, site.CacheTTL, site.IndexFiles)

	fmt.Println("--- effective configuration (TOML) ---")
	if err := configure.Encode(os.Stdout, doc, configure.FormatTOML); err != nil {
		log.Fatalf("❌ Failed to print configuration: %v", err)
	}

	// =========================================================================
	// PART 3: FAILURE
	// A docRoot that is a regular file is rejected; the diagnostic goes to
	// standard error and no configuration is produced.
	// =========================================================================
	notADir := filepath.Join(siteRoot, "robots.txt")
	if err := os.WriteFile(notADir, []byte("User-agent: *\n"), 0644); err != nil {
		log.Fatalf("❌ Failed to create file: %v", err)
	}

	failed := builder.Build(map[string]any{"docRoot": notADir, "listen": ":8080"})
	if errors.Is(failed.Err(), configure.ErrInvalidDocRoot) {
		log.Printf("✅ Rejected as expected: %s", failed.Reason())
	}
}
