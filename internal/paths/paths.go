package paths

import (
	"BlueprintDock/internal/constants"
	"BlueprintDock/internal/version"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var (
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
)

// GetConfigFilePath returns the absolute path to the blueprintdock.toml file.
// It places it in a subdirectory named after the application
// (e.g., ~/.config/blueprintdock/blueprintdock.toml).
func GetConfigFilePath() string {
	appName := strings.ToLower(version.ApplicationName)
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, appName, constants.AppConfigFileName)
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName, constants.AppConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, appName, constants.AppConfigFileName)
}

// GetConfigDir returns the absolute path to the blueprintdock configuration directory.
func GetConfigDir() string {
	return filepath.Dir(GetConfigFilePath())
}

// GetStateDir returns the absolute path to the blueprintdock state directory.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return StateHomeOverride
	}
	appName := strings.ToLower(version.ApplicationName)
	return filepath.Join(xdg.StateHome, appName)
}

// GetCatalogVersion retrieves the current version of the blueprint catalog
// checkout containing dir. Returns a tag name when HEAD is tagged, otherwise
// "BranchName commit shortHash".
func GetCatalogVersion(dir string) string {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "Unknown Version"
	}

	head, err := r.Head()
	if err != nil {
		return "Unknown Version"
	}

	// Iterate valid tags and check if any point to HEAD
	foundTag := ""
	if tags, err := r.Tags(); err == nil {
		_ = tags.ForEach(func(ref *plumbing.Reference) error {
			if ref.Hash() == head.Hash() {
				foundTag = ref.Name().Short()
				return fmt.Errorf("found") // Stop iteration
			}
			return nil
		})
	}
	if foundTag != "" {
		return foundTag
	}

	branchName := "HEAD"
	if head.Name().IsBranch() {
		branchName = head.Name().Short()
	}

	hash := head.Hash().String()
	if len(hash) > 7 {
		hash = hash[:7]
	}

	return fmt.Sprintf("%s commit %s", branchName, hash)
}
