package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/weiawesome/identifier/internal/registry"
	"github.com/weiawesome/identifier/pkg/identifier"
	"github.com/weiawesome/identifier/pkg/log"
	"github.com/weiawesome/identifier/pkg/strategy"
)

// MaxBatchSize bounds GenerateBatch.
const MaxBatchSize = 1000

var (
	ErrUnknownKind  = errors.New("unknown identifier kind")
	ErrInvalidCount = fmt.Errorf("count must be between 1 and %d", MaxBatchSize)
)

// Error codes reported to clients for parse failures.
const (
	CodeInvalidLength = "INVALID_LENGTH"
	CodeInvalidChars  = "INVALID_CHARS"
	CodeInvalid       = "INVALID"
)

// ParseResult holds the outcome of a successful parse.
type ParseResult struct {
	Kind      string `json:"kind"`
	Canonical string `json:"canonical"`
	Width     int    `json:"width"`
	HexLength int    `json:"hex_length"`
	// Fields is set for strategies that pack decodable parts into the value.
	Fields *strategy.Fields `json:"fields,omitempty"`
}

// KindInfo describes a registered kind.
type KindInfo struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
	Width    int    `json:"width"`
}

// IDService generates and parses identifiers of the configured kinds.
type IDService interface {
	Generate(ctx context.Context, kind string) (string, error)
	GenerateBatch(ctx context.Context, kind string, count int) ([]string, error)
	// Validate reports whether text is a valid identifier of kind. The error
	// is reserved for an unknown kind.
	Validate(ctx context.Context, kind, text string) (bool, string, error)
	Parse(ctx context.Context, kind, text string) (*ParseResult, error)
	Kinds(ctx context.Context) []KindInfo
}

type idService struct {
	registry *registry.Registry
}

// NewIDService creates an IDService backed by r.
func NewIDService(r *registry.Registry) IDService {
	return &idService{registry: r}
}

func (s *idService) codec(kind string) (registry.Codec, error) {
	c, ok := s.registry.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return c, nil
}

func (s *idService) Generate(ctx context.Context, kind string) (string, error) {
	c, err := s.codec(kind)
	if err != nil {
		return "", err
	}
	id := c.Generate()
	l := log.Ctx(log.WithKind(ctx, kind))
	l.Debug().Str(log.FieldID, id).Msg("id generated")
	return id, nil
}

func (s *idService) GenerateBatch(ctx context.Context, kind string, count int) ([]string, error) {
	if count < 1 || count > MaxBatchSize {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, count)
	}
	c, err := s.codec(kind)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, c.Generate())
	}
	l := log.Ctx(log.WithKind(ctx, kind))
	l.Debug().Int(log.FieldCount, count).Msg("id batch generated")
	return ids, nil
}

func (s *idService) Validate(ctx context.Context, kind, text string) (bool, string, error) {
	if _, err := s.Parse(ctx, kind, text); err != nil {
		if errors.Is(err, ErrUnknownKind) {
			return false, "", err
		}
		return false, err.Error(), nil
	}
	return true, "", nil
}

func (s *idService) Parse(ctx context.Context, kind, text string) (*ParseResult, error) {
	c, err := s.codec(kind)
	if err != nil {
		return nil, err
	}

	canonical, err := c.Parse(text)
	if err != nil {
		l := log.Ctx(log.WithKind(ctx, kind))
		l.Debug().Err(err).Str(log.FieldID, text).Msg("id rejected")
		return nil, err
	}

	return &ParseResult{
		Kind:      kind,
		Canonical: canonical,
		Width:     int(c.Width()),
		HexLength: c.Width().HexLen(),
		Fields:    c.Describe(canonical),
	}, nil
}

func (s *idService) Kinds(ctx context.Context) []KindInfo {
	names := s.registry.Names()
	kinds := make([]KindInfo, 0, len(names))
	for _, name := range names {
		c, ok := s.registry.Lookup(name)
		if !ok {
			continue
		}
		kinds = append(kinds, KindInfo{Name: name, Strategy: c.Strategy(), Width: int(c.Width())})
	}
	return kinds
}

// ErrorCode maps a parse error to its client-facing code, or "" if err is
// not a parse error.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, identifier.ErrInvalidLength):
		return CodeInvalidLength
	case errors.Is(err, identifier.ErrInvalidChars):
		return CodeInvalidChars
	case errors.Is(err, identifier.ErrInvalid):
		return CodeInvalid
	}
	return ""
}
