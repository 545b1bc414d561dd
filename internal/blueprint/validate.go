// Package blueprint cross-checks the meta index against the blueprint
// folders on disk. Only well-formedness is verified; compose and template
// semantics are out of scope.
package blueprint

import (
	"BlueprintDock/internal/constants"
	"BlueprintDock/internal/logger"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Issue is one non-fatal finding from a catalog check.
type Issue struct {
	ID      string
	Message string
}

// Check verifies every index record against the blueprints directory and
// reports blueprint folders that have no index record. All findings are
// warnings; nothing here fails the run.
func Check(ctx context.Context, records []json.RawMessage, dir string) []Issue {
	var issues []Issue

	indexed := make(map[string]bool, len(records))
	for _, rec := range records {
		res := gjson.ParseBytes(rec)
		id := res.Get("id").Str
		if id == "" {
			continue
		}
		indexed[id] = true

		issues = append(issues, checkFolder(id, filepath.Join(dir, id))...)

		if v := res.Get("version"); v.Type == gjson.String && v.Str != "" {
			if _, err := semver.NewVersion(v.Str); err != nil {
				issues = append(issues, Issue{ID: id, Message: fmt.Sprintf("version '{{_Version_}}%s{{|-|}}' is not valid semver", v.Str)})
			}
		}
	}

	// Folders on disk that the index does not know about
	entries, err := os.ReadDir(dir)
	if err == nil {
		var orphans []string
		for _, e := range entries {
			if e.IsDir() && !indexed[e.Name()] {
				orphans = append(orphans, e.Name())
			}
		}
		sort.Strings(orphans)
		for _, name := range orphans {
			issues = append(issues, Issue{ID: name, Message: "blueprint folder has no index entry"})
		}
	}

	for _, issue := range issues {
		logger.Warn(ctx, "Blueprint '{{_Id_}}%s{{|-|}}': %s.", issue.ID, issue.Message)
	}
	return issues
}

// checkFolder verifies the blueprint folder exists and that its compose and
// template files parse.
func checkFolder(id, folder string) []Issue {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return []Issue{{ID: id, Message: fmt.Sprintf("no blueprint folder at '{{_Folder_}}%s{{|-|}}'", folder)}}
	}

	var issues []Issue

	composePath := filepath.Join(folder, constants.ComposeFileName)
	if data, err := os.ReadFile(composePath); err != nil {
		issues = append(issues, Issue{ID: id, Message: fmt.Sprintf("missing '{{_File_}}%s{{|-|}}'", constants.ComposeFileName)})
	} else {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			issues = append(issues, Issue{ID: id, Message: fmt.Sprintf("'{{_File_}}%s{{|-|}}' is not valid YAML: %v", constants.ComposeFileName, err)})
		}
	}

	templatePath := filepath.Join(folder, constants.TemplateFileName)
	if data, err := os.ReadFile(templatePath); err != nil {
		issues = append(issues, Issue{ID: id, Message: fmt.Sprintf("missing '{{_File_}}%s{{|-|}}'", constants.TemplateFileName)})
	} else {
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			issues = append(issues, Issue{ID: id, Message: fmt.Sprintf("'{{_File_}}%s{{|-|}}' is not valid TOML: %v", constants.TemplateFileName, err)})
		}
	}

	return issues
}
