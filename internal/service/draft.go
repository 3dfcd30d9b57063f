package service

import (
	"context"
	"strings"

	"github.com/bisagn/formalgen/internal/api/dto"
	ierr "github.com/bisagn/formalgen/internal/errors"
	"github.com/bisagn/formalgen/internal/types"
)

type DraftService interface {
	// DraftBody generates a document body for the given topic in the
	// requested language.
	DraftBody(ctx context.Context, docType types.DocumentType, req *dto.DraftBodyRequest) (*dto.DraftBodyResponse, error)
}

type draftService struct {
	ServiceParams
}

func NewDraftService(params ServiceParams) DraftService {
	return &draftService{ServiceParams: params}
}

func (s *draftService) DraftBody(ctx context.Context, docType types.DocumentType, req *dto.DraftBodyRequest) (*dto.DraftBodyResponse, error) {
	if err := docType.Validate(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid draft request").
			Mark(ierr.ErrValidation)
	}

	lang := types.NormalizeLanguage(req.Language)
	body, err := s.Drafter.DraftBody(ctx, docType, lang, strings.TrimSpace(req.Prompt))
	if err != nil {
		return nil, err
	}

	return &dto.DraftBodyResponse{Body: body}, nil
}
