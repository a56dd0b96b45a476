package account

import (
	"fmt"
	"strings"

	"customer-service/internal/domain"
	"customer-service/pkg/utils"
	"customer-service/pkg/xerrors"
)

// validateCreate checks the creation payload shape before any store access.
// One rule per field; every violated field contributes one source, so a bad
// request reports all of its problems at once.
func validateCreate(req *domain.CreateAccountRequest) error {
	var sources []xerrors.Source

	if strings.TrimSpace(req.Name) == "" {
		sources = append(sources, xerrors.Source{Path: "name", Message: "Name is required"})
	}

	if strings.TrimSpace(req.Email) == "" {
		sources = append(sources, xerrors.Source{Path: "email", Message: "Email is required"})
	} else if !utils.ValidateEmail(req.Email) {
		sources = append(sources, xerrors.Source{Path: "email", Message: "Invalid email type"})
	}

	if req.Password == "" {
		sources = append(sources, xerrors.Source{Path: "password", Message: "Password is required"})
	} else if len(req.Password) < utils.MinPasswordLen {
		sources = append(sources, xerrors.Source{
			Path:    "password",
			Message: fmt.Sprintf("Password must be at least %d characters", utils.MinPasswordLen),
		})
	}

	if len(sources) > 0 {
		return xerrors.Validation(sources...)
	}
	return nil
}
