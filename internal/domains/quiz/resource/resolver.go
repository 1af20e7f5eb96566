package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/model"
)

const (
	// LocalePlaceholder is replaced by the language code inside a file name pattern
	LocalePlaceholder = "{locale}"
	Extension         = ".csv"
)

// Resolver picks the question file for a locale inside a file system.
// The locale is passed on every call and never stored.
type Resolver struct {
	fsys          fs.FS
	baseName      string
	pattern       string
	defaultLocale language.Tag
}

func NewResolver(fsys fs.FS, baseName, pattern string, defaultLocale language.Tag) *Resolver {
	if defaultLocale == language.Und {
		defaultLocale = language.English
	}
	return &Resolver{
		fsys:          fsys,
		baseName:      baseName,
		pattern:       pattern,
		defaultLocale: defaultLocale,
	}
}

// FS exposes the underlying file system for opening resolved names
func (r *Resolver) FS() fs.FS {
	return r.fsys
}

// DefaultLocale is used whenever a caller passes language.Und
func (r *Resolver) DefaultLocale() language.Tag {
	return r.defaultLocale
}

// LanguageCode returns the ISO 639 code used in file names ("en", "ru")
func (r *Resolver) LanguageCode(tag language.Tag) string {
	if tag == language.Und {
		tag = r.defaultLocale
	}
	base, _ := tag.Base()
	return base.String()
}

// LocalizedName builds the file name for a locale without checking it exists
func (r *Resolver) LocalizedName(tag language.Tag) string {
	code := r.LanguageCode(tag)
	if r.pattern != "" {
		return strings.ReplaceAll(r.pattern, LocalePlaceholder, code)
	}
	return r.baseName + "_" + code + Extension
}

// DefaultName is the locale-free fallback file
func (r *Resolver) DefaultName() string {
	return r.baseName + Extension
}

// Resolve returns the localized file name if present, else the default one
func (r *Resolver) Resolve(tag language.Tag) (string, error) {
	localized := r.LocalizedName(tag)
	if r.exists(localized) {
		return localized, nil
	}

	fallback := r.DefaultName()
	log.Warn().
		Str("localized", localized).
		Str("fallback", fallback).
		Msg("Localized question file not found, trying default")

	if r.exists(fallback) {
		return fallback, nil
	}

	return "", fmt.Errorf("%w: %s or %s", model.ErrResourceNotFound, localized, fallback)
}

func (r *Resolver) exists(name string) bool {
	info, err := fs.Stat(r.fsys, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debug().Err(err).Str("file", name).Msg("Stat question file failed")
		}
		return false
	}
	return !info.IsDir()
}
