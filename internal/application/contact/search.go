package contact

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain "github.com/mohammadpnp/contact-book/internal/domain/contact"
	"github.com/mohammadpnp/contact-book/internal/domain/user"
	"github.com/mohammadpnp/contact-book/internal/validation"
)

var searchSchema = validation.Schema{
	Name: "search contact",
	Fields: map[string]validation.Rule{
		"name":  {Max: 100},
		"email": {Max: 100},
		"phone": {Max: 100},
		"page":  {Required: true, Kind: validation.Int},
		"size":  {Required: true, Kind: validation.Int, Max: 100},
	},
}

type SearchInput struct {
	Name  *string
	Email *string
	Phone *string
	Page  int64
	Size  int64
}

type SearchOutput struct {
	Contacts    []ContactOutput
	CurrentPage int64
	TotalPage   int64
	Size        int64
}

type Search interface {
	Execute(ctx context.Context, caller user.User, in SearchInput) (SearchOutput, error)
}

type search struct {
	repo   domain.SearchRepository
	logger *zap.Logger
}

func NewSearch(repo domain.SearchRepository, logger *zap.Logger) Search {
	return &search{repo: repo, logger: logger}
}

func (uc *search) Execute(ctx context.Context, caller user.User, in SearchInput) (SearchOutput, error) {
	uc.logger.Debug("search contacts",
		zap.String("username", caller.Username),
		zap.Int64("page", in.Page),
		zap.Int64("size", in.Size))

	vals := validation.Values{"page": in.Page, "size": in.Size}
	vals.SetOptional("name", in.Name)
	vals.SetOptional("email", in.Email)
	vals.SetOptional("phone", in.Phone)
	if _, err := searchSchema.Apply(vals); err != nil {
		return SearchOutput{}, err
	}

	filter := domain.SearchFilter{Name: in.Name, Email: in.Email, Phone: in.Phone}
	skip := (in.Page - 1) * in.Size

	contacts, err := uc.repo.Search(ctx, caller.Username, filter, int(in.Size), int(skip))
	if err != nil {
		return SearchOutput{}, fmt.Errorf("search contacts: %w", err)
	}

	total, err := uc.repo.Count(ctx, caller.Username, filter)
	if err != nil {
		return SearchOutput{}, fmt.Errorf("count contacts: %w", err)
	}

	outputs := make([]ContactOutput, 0, len(contacts))
	for _, c := range contacts {
		outputs = append(outputs, toOutput(c))
	}

	return SearchOutput{
		Contacts:    outputs,
		CurrentPage: in.Page,
		// Ceiling division; zero matches means zero pages.
		TotalPage: (total + in.Size - 1) / in.Size,
		Size:      in.Size,
	}, nil
}
