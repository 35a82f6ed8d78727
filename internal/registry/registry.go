package registry

import (
	"sort"
	"strings"

	mdwerror "github.com/msto63/pier/foundation/core/error"
	"github.com/msto63/pier/foundation/core/log"
	"github.com/msto63/pier/foundation/utils/slicex"
	mdwstringx "github.com/msto63/pier/foundation/utils/stringx"
)

// Options configures a Registry
type Options struct {
	Logger *log.Logger
}

// ListOptions filters the result of List. Zero values disable a filter.
type ListOptions struct {
	// Query keeps scripts whose alias contains it (case-sensitive)
	Query string

	// Tags keeps scripts carrying at least one of the tags, or all of them
	// when MatchAll is set
	Tags     []string
	MatchAll bool
}

// Registry is an ordered alias -> Script mapping.
// It is not safe for concurrent use.
type Registry struct {
	order   []string
	scripts map[string]Script
	logger  *log.Logger
}

// New creates an empty registry
func New(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}

	return &Registry{
		scripts: make(map[string]Script),
		logger:  logger.WithField("component", "registry"),
	}
}

// Len returns the number of scripts
func (r *Registry) Len() int {
	return len(r.order)
}

// Aliases returns all aliases in insertion order
func (r *Registry) Aliases() []string {
	return append([]string(nil), r.order...)
}

// Scripts returns copies of all scripts in insertion order
func (r *Registry) Scripts() []Script {
	result := make([]Script, 0, len(r.order))
	for _, alias := range r.order {
		result = append(result, r.scripts[alias].Clone())
	}
	return result
}

// Tags returns the distinct tags of all scripts, sorted
func (r *Registry) Tags() []string {
	var all []string
	for _, s := range r.scripts {
		all = append(all, s.Tags...)
	}

	tags := slicex.Unique(all)
	if tags == nil {
		tags = []string{}
	}
	sort.Strings(tags)
	return tags
}

// Add inserts script under script.Alias. An existing entry is replaced only
// when overwrite is set and keeps its position.
func (r *Registry) Add(script Script, overwrite bool) error {
	const op = "registry.Add"

	if err := script.Validate(); err != nil {
		return mdwerror.Wrap(err, "invalid script").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op)
	}

	_, exists := r.scripts[script.Alias]
	if exists && !overwrite {
		return errAliasAlreadyExists(op, script.Alias)
	}

	if !exists {
		r.order = append(r.order, script.Alias)
	}
	r.scripts[script.Alias] = script.Clone()

	r.logger.Debug("script added", log.Fields{
		"alias":       script.Alias,
		"overwritten": exists,
	})

	return nil
}

// Fetch returns a copy of the script registered under alias
func (r *Registry) Fetch(alias string) (Script, error) {
	if err := r.lookup("registry.Fetch", alias); err != nil {
		return Script{}, err
	}
	return r.scripts[alias].Clone(), nil
}

// Remove deletes the script registered under alias
func (r *Registry) Remove(alias string) error {
	if err := r.lookup("registry.Remove", alias); err != nil {
		return err
	}

	delete(r.scripts, alias)
	r.order = slicex.Remove(r.order, alias)

	r.logger.Debug("script removed", log.Fields{"alias": alias})
	return nil
}

// Move renames from to to. Either the whole rename happens or the registry is
// left unchanged. A new alias keeps the entry's position; when overwriting,
// the entry takes the replaced script's position.
func (r *Registry) Move(from, to string, overwrite bool) error {
	const op = "registry.Move"

	if err := r.lookup(op, from); err != nil {
		return err
	}

	if mdwstringx.IsBlank(to) {
		return mdwerror.New("destination alias cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op).
			WithDetail("from", from)
	}

	if from == to {
		return nil
	}

	_, exists := r.scripts[to]
	if exists && !overwrite {
		return errAliasAlreadyExists(op, to).WithDetail("from", from)
	}

	script := r.scripts[from]
	script.Alias = to

	if exists {
		r.order = slicex.Remove(r.order, from)
	} else {
		r.order[slicex.IndexOf(r.order, from)] = to
	}
	delete(r.scripts, from)
	r.scripts[to] = script

	r.logger.Debug("script moved", log.Fields{
		"from":        from,
		"to":          to,
		"overwritten": exists,
	})

	return nil
}

// List returns copies of the scripts matching opts in insertion order.
// An empty registry is an error regardless of the filters.
func (r *Registry) List(opts ListOptions) ([]Script, error) {
	if len(r.order) == 0 {
		return nil, errNoScriptsExists("registry.List")
	}

	result := make([]Script, 0, len(r.order))
	for _, alias := range r.order {
		script := r.scripts[alias]
		if opts.Query != "" && !strings.Contains(alias, opts.Query) {
			continue
		}
		if len(opts.Tags) > 0 && !matchTags(script.Tags, opts.Tags, opts.MatchAll) {
			continue
		}
		result = append(result, script.Clone())
	}

	return result, nil
}

// lookup applies the emptiness-before-absence rule shared by every
// alias based operation.
func (r *Registry) lookup(op, alias string) error {
	if len(r.order) == 0 {
		return errNoScriptsExists(op)
	}
	if _, ok := r.scripts[alias]; !ok {
		return mdwerror.Newf("alias %q not found", alias).
			WithCode(mdwerror.CodeAliasNotFound).
			WithOperation(op).
			WithDetail("alias", alias)
	}
	return nil
}

func matchTags(have, want []string, all bool) bool {
	carried := func(tag string) bool { return slicex.Contains(have, tag) }
	if all {
		return slicex.Every(want, carried)
	}
	return slicex.Some(want, carried)
}

func errNoScriptsExists(op string) *mdwerror.Error {
	return mdwerror.New("no scripts exist").
		WithCode(mdwerror.CodeNoScriptsExists).
		WithOperation(op)
}

func errAliasAlreadyExists(op, alias string) *mdwerror.Error {
	return mdwerror.Newf("alias %q already exists", alias).
		WithCode(mdwerror.CodeAliasAlreadyExists).
		WithOperation(op).
		WithDetail("alias", alias)
}
