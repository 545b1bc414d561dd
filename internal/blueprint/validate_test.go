package blueprint

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validCompose = `services:
  app:
    image: example/app:latest
    ports:
      - "8080:8080"
`

const validTemplate = `[variables]
port = "8080"
`

func makeBlueprint(t *testing.T, dir, id, compose, template string) {
	t.Helper()
	folder := filepath.Join(dir, id)
	if err := os.MkdirAll(folder, 0755); err != nil {
		t.Fatal(err)
	}
	if compose != "" {
		if err := os.WriteFile(filepath.Join(folder, "docker-compose.yml"), []byte(compose), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if template != "" {
		if err := os.WriteFile(filepath.Join(folder, "template.toml"), []byte(template), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func records(raw ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(raw))
	for i, r := range raw {
		out[i] = json.RawMessage(r)
	}
	return out
}

func issuesFor(issues []Issue, id string) []string {
	var out []string
	for _, i := range issues {
		if i.ID == id {
			out = append(out, i.Message)
		}
	}
	return out
}

func TestCheckValidCatalog(t *testing.T) {
	dir := t.TempDir()
	makeBlueprint(t, dir, "app", validCompose, validTemplate)

	issues := Check(context.Background(), records(`{"id":"app","version":"1.2.3"}`), dir)

	if len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestCheckMissingFolder(t *testing.T) {
	dir := t.TempDir()

	issues := Check(context.Background(), records(`{"id":"ghost"}`), dir)

	got := issuesFor(issues, "ghost")
	if len(got) != 1 || !strings.Contains(got[0], "no blueprint folder") {
		t.Errorf("issues = %v; want a single no-folder finding", got)
	}
}

func TestCheckMissingAndMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	makeBlueprint(t, dir, "nocompose", "", validTemplate)
	makeBlueprint(t, dir, "badyaml", "services:\n  app:\n   - [", validTemplate)
	makeBlueprint(t, dir, "badtoml", validCompose, "x = = 1")

	issues := Check(context.Background(), records(
		`{"id":"nocompose"}`,
		`{"id":"badyaml"}`,
		`{"id":"badtoml"}`,
	), dir)

	if got := issuesFor(issues, "nocompose"); len(got) != 1 || !strings.Contains(got[0], "missing") {
		t.Errorf("nocompose issues = %v", got)
	}
	if got := issuesFor(issues, "badyaml"); len(got) != 1 || !strings.Contains(got[0], "not valid YAML") {
		t.Errorf("badyaml issues = %v", got)
	}
	if got := issuesFor(issues, "badtoml"); len(got) != 1 || !strings.Contains(got[0], "not valid TOML") {
		t.Errorf("badtoml issues = %v", got)
	}
}

func TestCheckInvalidSemver(t *testing.T) {
	dir := t.TempDir()
	makeBlueprint(t, dir, "app", validCompose, validTemplate)

	issues := Check(context.Background(), records(`{"id":"app","version":"latest"}`), dir)

	got := issuesFor(issues, "app")
	if len(got) != 1 || !strings.Contains(got[0], "not valid semver") {
		t.Errorf("issues = %v; want a semver finding", got)
	}
}

func TestCheckOrphanFolders(t *testing.T) {
	dir := t.TempDir()
	makeBlueprint(t, dir, "app", validCompose, validTemplate)
	makeBlueprint(t, dir, "zzz-orphan", validCompose, validTemplate)
	makeBlueprint(t, dir, "aaa-orphan", validCompose, validTemplate)

	issues := Check(context.Background(), records(`{"id":"app"}`), dir)

	if len(issues) != 2 {
		t.Fatalf("expected 2 orphan findings, got %v", issues)
	}
	if issues[0].ID != "aaa-orphan" || issues[1].ID != "zzz-orphan" {
		t.Errorf("orphans not sorted: %v, %v", issues[0].ID, issues[1].ID)
	}
	for _, i := range issues {
		if !strings.Contains(i.Message, "no index entry") {
			t.Errorf("unexpected message %q", i.Message)
		}
	}
}

func TestCheckRecordsWithoutIDAreIgnored(t *testing.T) {
	dir := t.TempDir()

	issues := Check(context.Background(), records(`{"name":"anonymous"}`), dir)

	if len(issues) != 0 {
		t.Errorf("expected no issues for id-less records, got %v", issues)
	}
}
