package banners

import (
	"fmt"
	"strings"

	"github.com/bannerhub/bannerhub/internal/shared"
)

func validate(b Banner) error {
	var missing []string
	if strings.TrimSpace(b.ID) == "" {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(b.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(b.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(b.URL) == "" {
		missing = append(missing, "url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", shared.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
