package meta

import (
	"BlueprintDock/internal/constants"
	"BlueprintDock/internal/logger"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// requiredFields are checked per record when schema validation is enabled.
// A missing field is a warning, not a reason to drop the record.
var requiredFields = []string{"id", "name", "version", "description", "links", "logo", "tags"}

// Options configures a Processor. The zero value is not useful; start from
// DefaultOptions and override.
type Options struct {
	// InputFile is the index to read. Defaults to meta.json.
	InputFile string
	// OutputFile is the path to write. Defaults to InputFile (in-place).
	OutputFile string
	// CreateBackup writes the original file bytes to a timestamped sibling
	// path before the output write.
	CreateBackup bool
	// ValidateSchema checks each record for the required fields.
	ValidateSchema bool
	// Verbose emits a debug line for every accepted record.
	Verbose bool
	// SkipUnchangedWrite leaves an in-place target untouched when the
	// normalized output is byte-identical. Used by watch mode so the tool
	// does not react to its own writes.
	SkipUnchangedWrite bool
}

// DefaultOptions returns the options matching a bare CLI invocation.
func DefaultOptions() Options {
	return Options{
		InputFile:      constants.MetaFileName,
		ValidateSchema: true,
	}
}

// Duplicate describes a dropped later occurrence of an already-seen id.
type Duplicate struct {
	ID    string
	Name  string
	Index int // position in the original array
}

// Summary reports the outcome of a successful Process run.
type Summary struct {
	OriginalCount     int
	DuplicatesRemoved int
	FinalCount        int
	SchemaViolations  int
	Duplicates        []Duplicate

	// Records is the accepted set in output order.
	Records []json.RawMessage
	// Changed reports whether the output differs from the input bytes.
	Changed bool
	// Written reports whether the output file was written.
	Written bool
	// BackupFile is the path of the backup copy, when one was created.
	BackupFile string
}

// Processor normalizes one meta index file. Each run is stateless; the only
// on-disk traces are the output file and the optional backup.
type Processor struct {
	opts Options
}

// NewProcessor fills in defaulted paths and returns a ready processor.
func NewProcessor(opts Options) *Processor {
	if opts.InputFile == "" {
		opts.InputFile = constants.MetaFileName
	}
	if opts.OutputFile == "" {
		opts.OutputFile = opts.InputFile
	}
	return &Processor{opts: opts}
}

type entry struct {
	id  string
	raw json.RawMessage
}

// Process runs the full pipeline: read, filter, dedupe, sort, backup, write.
// Fatal conditions (missing file, malformed JSON, non-array top level) are
// returned as errors before anything is written; the caller decides whether
// that terminates the process.
func (p *Processor) Process(ctx context.Context) (*Summary, error) {
	in := p.opts.InputFile

	raw, err := os.ReadFile(in)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("'{{_File_}}%s{{|-|}}': %w", in, ErrNotFound)
		}
		return nil, err
	}

	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if _, ok := probe.([]any); !ok {
		return nil, fmt.Errorf("'{{_File_}}%s{{|-|}}': %w", in, ErrInvalidShape)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	logger.Info(ctx, "Processing '{{_File_}}%s{{|-|}}' (%d entries).", in, len(elems))

	sum := &Summary{OriginalCount: len(elems)}
	seen := make(map[string]bool, len(elems))
	var kept []entry

	for i, el := range elems {
		res := gjson.ParseBytes(el)
		if !res.IsObject() {
			sum.SchemaViolations++
			logger.Warn(ctx, "Skipping entry at index %d: not an object.", i)
			continue
		}

		name := recordName(res)
		id := res.Get("id")
		if id.Type != gjson.String || id.Str == "" {
			sum.SchemaViolations++
			logger.Warn(ctx, "Skipping entry '{{_Name_}}%s{{|-|}}' at index %d: missing id.", name, i)
			continue
		}

		if p.opts.ValidateSchema {
			sum.SchemaViolations += p.checkSchema(ctx, res, id.Str, name)
		}

		// First occurrence wins; later ones are dropped. The dedupe key is
		// the raw id (case-sensitive) even though the sort key is lowercased.
		if seen[id.Str] {
			sum.Duplicates = append(sum.Duplicates, Duplicate{ID: id.Str, Name: name, Index: i})
			logger.Warn(ctx, "Removing duplicate '{{_Id_}}%s{{|-|}}' ('{{_Name_}}%s{{|-|}}') at index %d.", id.Str, name, i)
			continue
		}
		seen[id.Str] = true
		kept = append(kept, entry{id: id.Str, raw: el})

		if p.opts.Verbose {
			logger.Debug(ctx, "Keeping '{{_Id_}}%s{{|-|}}' ('{{_Name_}}%s{{|-|}}').", id.Str, name)
		}
	}
	sum.DuplicatesRemoved = len(sum.Duplicates)

	sort.SliceStable(kept, func(i, j int) bool {
		return strings.ToLower(kept[i].id) < strings.ToLower(kept[j].id)
	})

	sum.Records = make([]json.RawMessage, len(kept))
	for i, e := range kept {
		sum.Records[i] = e.raw
	}
	sum.FinalCount = len(kept)

	out, err := EncodeIndex(sum.Records)
	if err != nil {
		return nil, err
	}
	sum.Changed = !bytes.Equal(out, raw)

	if p.opts.CreateBackup {
		backupPath, err := WriteBackup(in, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to write backup: %w", err)
		}
		sum.BackupFile = backupPath
		logger.Info(ctx, "Wrote backup to '{{_File_}}%s{{|-|}}'.", backupPath)
	}

	if p.opts.SkipUnchangedWrite && !sum.Changed && p.opts.OutputFile == p.opts.InputFile {
		logger.Info(ctx, "Index already normalized; skipping write.")
		return sum, nil
	}

	if err := os.WriteFile(p.opts.OutputFile, out, 0644); err != nil {
		return nil, err
	}
	sum.Written = true
	logger.Info(ctx, "Wrote '{{_File_}}%s{{|-|}}' (%d entries).", p.opts.OutputFile, sum.FinalCount)

	return sum, nil
}

// checkSchema warns about missing required fields and returns 1 when the
// record violated the schema. The extra links.github and tags checks warn
// without counting.
func (p *Processor) checkSchema(ctx context.Context, res gjson.Result, id, name string) int {
	violated := 0
	for _, f := range requiredFields {
		if !res.Get(f).Exists() {
			logger.Warn(ctx, "Record '{{_Id_}}%s{{|-|}}' ('{{_Name_}}%s{{|-|}}') is missing required field '{{_Var_}}%s{{|-|}}'.", id, name, f)
			violated = 1
		}
	}
	if !res.Get("links.github").Exists() {
		logger.Warn(ctx, "Record '{{_Id_}}%s{{|-|}}' has no '{{_Var_}}links.github{{|-|}}' entry.", id)
	}
	if tags := res.Get("tags"); tags.Exists() && !tags.IsArray() {
		logger.Warn(ctx, "Record '{{_Id_}}%s{{|-|}}': '{{_Var_}}tags{{|-|}}' is not an array.", id)
	}
	return violated
}

func recordName(res gjson.Result) string {
	if name := res.Get("name"); name.Type == gjson.String && name.Str != "" {
		return name.Str
	}
	return "Unknown"
}

// Log prints the final summary. It is emitted at Notice level so it shows
// regardless of verbosity.
func (s *Summary) Log(ctx context.Context) {
	logger.Notice(ctx, "Processed %d entries: removed %d duplicates, kept %d.", s.OriginalCount, s.DuplicatesRemoved, s.FinalCount)
	if s.SchemaViolations > 0 {
		logger.Notice(ctx, "%d entries had schema violations.", s.SchemaViolations)
	}
	for _, d := range s.Duplicates {
		logger.Notice(ctx, "Removed duplicate '{{_Id_}}%s{{|-|}}' ('{{_Name_}}%s{{|-|}}', index %d).", d.ID, d.Name, d.Index)
	}
}
