package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

var errAmbiguousRef = errors.New("ambiguous reference")

// minPrefixLen is the shortest id prefix accepted as a reference.
const minPrefixLen = 4

// match finds the item ref points at: an exact id, then an exact name, then
// a unique id prefix.
func match[T any](what string, items []T, ref string, id, name func(T) string) (T, error) {
	var zero T
	for _, item := range items {
		if id(item) == ref {
			return item, nil
		}
	}

	var found []T
	for _, item := range items {
		if name(item) == ref {
			found = append(found, item)
		}
	}
	if len(found) == 0 && len(ref) >= minPrefixLen {
		for _, item := range items {
			if strings.HasPrefix(id(item), ref) {
				found = append(found, item)
			}
		}
	}

	switch len(found) {
	case 0:
		return zero, fmt.Errorf("%s %q: %w", what, ref, service.ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return zero, fmt.Errorf("%s %q matches %d items, use the id: %w", what, ref, len(found), errAmbiguousRef)
	}
}

func (rt *runtime) findPrompt(ctx context.Context, ref string) (models.Prompt, error) {
	prompts := rt.services().Prompts
	p, ok, err := prompts.GetPrompt(ctx, ref)
	if err != nil {
		return models.Prompt{}, err
	}
	if ok {
		return p, nil
	}

	all, err := prompts.ListPrompts(ctx, models.PromptFilter{AllFolders: true})
	if err != nil {
		return models.Prompt{}, err
	}
	return match("prompt", all, ref,
		func(p models.Prompt) string { return p.ID },
		func(p models.Prompt) string { return p.Title })
}

func (rt *runtime) findTag(ctx context.Context, ref string) (models.Tag, error) {
	tags, err := rt.services().Tags.ListTags(ctx)
	if err != nil {
		return models.Tag{}, err
	}
	return match("tag", tags, ref,
		func(t models.Tag) string { return t.ID },
		func(t models.Tag) string { return t.Name })
}

func (rt *runtime) findFolder(ctx context.Context, ref string) (models.Folder, error) {
	folders, err := rt.services().Folders.ListFolders(ctx)
	if err != nil {
		return models.Folder{}, err
	}
	return match("folder", folders, ref,
		func(f models.Folder) string { return f.ID },
		func(f models.Folder) string { return f.Name })
}

func (rt *runtime) findPreset(ctx context.Context, ref string) (models.ExecutionPreset, error) {
	presets := rt.services().Presets
	p, ok, err := presets.GetPreset(ctx, ref)
	if err != nil {
		return models.ExecutionPreset{}, err
	}
	if ok {
		return p, nil
	}

	all, err := presets.ListPresets(ctx)
	if err != nil {
		return models.ExecutionPreset{}, err
	}
	return match("preset", all, ref,
		func(p models.ExecutionPreset) string { return p.ID },
		func(p models.ExecutionPreset) string { return p.Name })
}

func (rt *runtime) findCredential(ctx context.Context, ref string) (models.Credential, error) {
	creds, err := rt.services().Credentials.ListCredentials(ctx)
	if err != nil {
		return models.Credential{}, err
	}
	return match("credential", creds, ref,
		func(c models.Credential) string { return c.ID },
		func(c models.Credential) string { return c.Name })
}

// folderID resolves an optional folder reference; empty means no folder.
func (rt *runtime) folderID(ctx context.Context, ref string) (*string, error) {
	if ref == "" {
		return nil, nil
	}
	f, err := rt.findFolder(ctx, ref)
	if err != nil {
		return nil, err
	}
	return &f.ID, nil
}

// tagIDs turns tag names into ids, creating the tags that do not exist yet.
func (rt *runtime) tagIDs(ctx context.Context, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := rt.services().Tags.CreateTag(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", name, err)
		}
		if !seen[tag.ID] {
			seen[tag.ID] = true
			ids = append(ids, tag.ID)
		}
	}
	return ids, nil
}

// tagNames maps tag ids to names for listings.
func (rt *runtime) tagNames(ctx context.Context) (map[string]string, error) {
	tags, err := rt.services().Tags.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(tags))
	for _, t := range tags {
		names[t.ID] = t.Name
	}
	return names, nil
}

// readContent returns the text given inline, read from file ("-" is stdin)
// or, when both are empty, read from stdin. One trailing newline is dropped.
func readContent(in io.Reader, inline, file string) (string, error) {
	if inline != "" {
		return inline, nil
	}

	var (
		data []byte
		err  error
	)
	if file != "" && file != "-" {
		data, err = os.ReadFile(file)
	} else {
		data, err = io.ReadAll(in)
	}
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// readLine reads a single line, used for secrets that should not end up in
// the shell history.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
