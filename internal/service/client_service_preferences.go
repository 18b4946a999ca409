package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/MKhiriev/days-together/internal/store"
	"github.com/MKhiriev/days-together/models"
)

// locale variables in POSIX precedence order
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

var (
	supportedLanguages = []models.Language{models.English, models.Spanish}
	languageMatcher    = language.NewMatcher([]language.Tag{language.English, language.Spanish})
)

type preferences struct {
	kv        store.KeyValueRepository
	forced    models.Language
	lookupEnv func(string) (string, bool)
	logger    *logger.Logger

	mu          sync.RWMutex
	lang        models.Language
	chosen      bool // Set was called this session
	subscribers []func(models.Language)
}

// NewPreferences creates the language preference. A non-empty forced language
// overrides both the saved value and the device locale.
func NewPreferences(kv store.KeyValueRepository, forced models.Language, log *logger.Logger) Preferences {
	return &preferences{
		kv:        kv,
		forced:    forced,
		lookupEnv: os.LookupEnv,
		logger:    log.WithComponent("preferences"),
		lang:      models.English,
	}
}

func (p *preferences) Load(ctx context.Context) models.Language {
	lang := p.resolve(ctx)

	p.mu.Lock()
	p.lang = lang
	p.mu.Unlock()

	p.notify(lang)
	return lang
}

func (p *preferences) resolve(ctx context.Context) models.Language {
	if p.forced.Valid() {
		return p.forced
	}

	saved, ok, err := p.kv.Get(ctx, store.KeyAppLanguage)
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "preferences.Load").Msg("failed to read saved language")
	}
	if ok && models.Language(saved).Valid() {
		return models.Language(saved)
	}

	return DetectLanguage(p.lookupEnv)
}

func (p *preferences) Language() models.Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lang
}

func (p *preferences) Set(ctx context.Context, lang models.Language) error {
	if !lang.Valid() {
		return newValidationError("language", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang))
	}

	p.mu.Lock()
	changed := p.lang != lang
	p.lang = lang
	p.chosen = true
	p.mu.Unlock()

	if err := p.Save(ctx); err != nil {
		p.logger.Warn().Err(err).Str("func", "preferences.Set").Msg("failed to persist language")
	}

	if changed {
		p.notify(lang)
	}
	return nil
}

func (p *preferences) Subscribe(fn func(models.Language)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, fn)
}

// Save persists the current language. A forced language is a per-session
// override and is only written once the user picks a language explicitly.
func (p *preferences) Save(ctx context.Context) error {
	p.mu.RLock()
	lang, chosen := p.lang, p.chosen
	p.mu.RUnlock()

	if p.forced.Valid() && !chosen {
		return nil
	}
	return p.kv.Set(ctx, store.KeyAppLanguage, string(lang))
}

func (p *preferences) notify(lang models.Language) {
	p.mu.RLock()
	subscribers := append([]func(models.Language){}, p.subscribers...)
	p.mu.RUnlock()

	for _, fn := range subscribers {
		fn(lang)
	}
}

// DetectLanguage picks Spanish when the first set locale variable matches it
// and English otherwise.
func DetectLanguage(lookupEnv func(string) (string, bool)) models.Language {
	for _, name := range localeEnvVars {
		v, ok := lookupEnv(name)
		if !ok || v == "" {
			continue
		}

		tag, err := language.Parse(localeToBCP47(v))
		if err != nil {
			// C, POSIX and friends
			return models.English
		}

		_, idx, confidence := languageMatcher.Match(tag)
		if confidence == language.No {
			return models.English
		}
		return supportedLanguages[idx]
	}

	return models.English
}

// localeToBCP47 turns "es_MX.UTF-8@euro" into "es-MX".
func localeToBCP47(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}
