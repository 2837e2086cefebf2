// Package loader reads an env file, validates it and applies the valid pairs
// to an environment store, reporting progress as it goes.
//
// A missing file, an empty file and malformed lines are all reported as
// warnings; only an unexpected read failure is reported as an error. In every
// case Load returns normally so the hosting process can continue.
package loader

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/xmazu/envload/envfile"
	"github.com/xmazu/envload/envstore"
	"github.com/xmazu/envload/source"
)

const DefaultFileName = ".env"

const (
	MsgParsePrefix    = "Warning! Could not parse environment variables: "
	MsgFileNotFound   = MsgParsePrefix + "no .env file found in the project's root dir"
	MsgFileEmpty      = MsgParsePrefix + ".env file is empty"
	MsgLoadedWithWarn = ".env file successfully loaded - some warnings present"
	MsgLoaded         = ".env file successfully loaded"
)

type Reporter interface {
	Success(msg string)
	Warning(msg string)
	Error(err error)
}

type Status int

const (
	StatusLoaded Status = iota
	StatusWarnings
	StatusNoPairs
	StatusNotFound
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusWarnings:
		return "loaded_with_warnings"
	case StatusNoPairs:
		return "no_pairs"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome describes a single Load call. Err is set only for StatusFailed.
// StatusNoPairs covers both empty files and files whose every line was
// rejected.
type Outcome struct {
	Status      Status
	Pairs       []envfile.Pair
	Diagnostics []envfile.Diagnostic
	Err         error
}

// Loader is not safe for concurrent use against the same Store.
type Loader struct {
	Source   source.Source
	Store    envstore.Store
	Reporter Reporter
	Log      zerolog.Logger
}

func New(src source.Source, store envstore.Store, reporter Reporter) *Loader {
	return &Loader{
		Source:   src,
		Store:    store,
		Reporter: reporter,
		Log:      zerolog.Nop(),
	}
}

// Load applies name (DefaultFileName when empty) to the store.
func (l *Loader) Load(name string) Outcome {
	if name == "" {
		name = DefaultFileName
	}
	log := l.Log.With().Str("file", name).Logger()

	content, err := l.Source.Read(name)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			log.Debug().Msg("env file not found")
			l.Reporter.Warning(MsgFileNotFound)
			return Outcome{Status: StatusNotFound}
		}
		l.Reporter.Error(err)
		return Outcome{Status: StatusFailed, Err: err}
	}

	if len(content) == 0 {
		l.Reporter.Warning(MsgFileEmpty)
	}

	res := envfile.Parse(content)
	for _, d := range res.Diagnostics {
		l.Reporter.Warning(d.Error())
	}

	out := Outcome{Pairs: res.Pairs, Diagnostics: res.Diagnostics}
	for _, p := range res.Pairs {
		if prev, ok := l.Store.Lookup(p.Key); ok && prev != p.Value {
			log.Debug().Str("key", p.Key).Msg("overriding existing variable")
		}
		if err := l.Store.Set(p.Key, p.Value); err != nil {
			l.Reporter.Error(err)
			out.Status = StatusFailed
			out.Err = err
			return out
		}
	}
	log.Debug().Int("pairs", len(res.Pairs)).Int("diagnostics", len(res.Diagnostics)).Msg("env file applied")

	switch {
	case len(res.Pairs) == 0:
		out.Status = StatusNoPairs
	case res.HasWarnings():
		out.Status = StatusWarnings
		l.Reporter.Success(MsgLoadedWithWarn)
	default:
		out.Status = StatusLoaded
		l.Reporter.Success(MsgLoaded)
	}
	return out
}
