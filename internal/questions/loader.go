package questions

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
)

// SupportedMajor is the question file format major version this build reads.
const SupportedMajor = "v1"

//go:embed bank/*.json
var bankFS embed.FS

//go:embed schema.json
var schemaJSON []byte

// Loader reads the questions of one subject.
type Loader interface {
	Load(ctx context.Context, subject string) ([]question.Question, error)
}

// FSLoader reads "<normalized-subject>.json" files from a file system.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader reading from fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// Bank returns the question bank compiled into the binary.
func Bank() fs.FS {
	sub, err := fs.Sub(bankFS, "bank")
	if err != nil {
		panic(fmt.Sprintf("embedded question bank: %v", err))
	}
	return sub
}

// EmbeddedLoader reads the built-in question bank.
func EmbeddedLoader() *FSLoader {
	return NewFSLoader(Bank())
}

// FileName maps a subject to its file name: lowercase, whitespace runs
// replaced by a hyphen, ".json" appended.
func FileName(subject string) string {
	return strings.Join(strings.Fields(strings.ToLower(subject)), "-") + ".json"
}

// Load reads and validates the file for subject.
func (l *FSLoader) Load(ctx context.Context, subject string) ([]question.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := FileName(subject)
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	qs, err := Parse(subject, data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return qs, nil
}

// subjectFile is the on-disk layout of a subject's questions.
type subjectFile struct {
	Version   string              `json:"version,omitempty"`
	Questions []question.Question `json:"questions"`
}

// Parse validates a subject document and returns its questions with
// Subject set and difficulty names normalized.
func Parse(subject string, data []byte) ([]question.Question, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := fileSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var file subjectFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if err := checkVersion(file.Version); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(file.Questions))
	out := make([]question.Question, 0, len(file.Questions))
	for _, q := range file.Questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		level, ok := question.ParseDifficulty(string(q.Difficulty))
		if !ok {
			return nil, fmt.Errorf("question %s: unknown difficulty %q", q.ID, q.Difficulty)
		}
		q.Difficulty = level

		matches := 0
		for _, o := range q.Options {
			if o == q.CorrectAnswer {
				matches++
			}
		}
		if matches != 1 {
			return nil, fmt.Errorf("question %s: correct answer must match exactly one option, found %d", q.ID, matches)
		}

		q.Subject = subject
		out = append(out, q)
	}
	return out, nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid format version %q", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("unsupported format version %s: want %s.x", v, SupportedMajor)
	}
	return nil
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// fileSchema compiles the embedded schema once.
func fileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://question-file.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(url)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile: %w", schemaErr)
		}
	})
	return schemaCompiled, schemaErr
}
