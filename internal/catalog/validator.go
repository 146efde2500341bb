package catalog

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/cellbutton/internal/button"
	"github.com/alexisbeaulieu97/cellbutton/internal/primitives"
	cberrors "github.com/alexisbeaulieu97/cellbutton/pkg/errors"
)

// CurrentVersion is the document version written by this tool.
const CurrentVersion = "1.0.0"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	entryIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

	supportedVersions = mustConstraint(">= 1.0.0, < 2.0.0")
)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			_, err := semver.StrictNewVersion(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("entry_id", func(fl validator.FieldLevel) bool {
			return entryIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("button_kind", func(fl validator.FieldLevel) bool {
			return button.Kind(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("button_theme", func(fl validator.FieldLevel) bool {
			return button.Theme(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("icon_position", func(fl validator.FieldLevel) bool {
			return button.IconPosition(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("button_type", func(fl validator.FieldLevel) bool {
			return button.Type(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("icon_name", func(fl validator.FieldLevel) bool {
			return primitives.KnownIcon(primitives.IconName(fl.Field().String()))
		})

		_ = v.RegisterValidation("icon_kind", func(fl validator.FieldLevel) bool {
			return primitives.IconKind(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the document schema, the version range and id uniqueness.
func Validate(cat *Catalog) error {
	if cat == nil {
		return cberrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := validatorInstance().Struct(cat); err != nil {
		return convertValidationError(err)
	}

	version := semver.MustParse(cat.Version)
	if !supportedVersions.Check(version) {
		return cberrors.NewValidationError("version", fmt.Sprintf("unsupported catalog version %s (want %s)", cat.Version, supportedVersions), nil)
	}

	seen := make(map[string]int, len(cat.Buttons))
	for i, entry := range cat.Buttons {
		if first, ok := seen[entry.ID]; ok {
			return cberrors.NewValidationError(fieldForEntry(i, "id"), fmt.Sprintf("duplicate id %q (first used by buttons[%d])", entry.ID, first), nil)
		}
		seen[entry.ID] = i
	}

	return nil
}

// convertValidationError normalizes validator errors into catalog validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return cberrors.NewValidationError(field, msg, err)
	}

	return cberrors.NewValidationError("catalog", err.Error(), err)
}

// yamlFieldName drops the root struct name from the namespace, leaving the
// YAML path of the offending field.
func yamlFieldName(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return rest
}

func fieldForEntry(index int, field string) string {
	return fmt.Sprintf("buttons[%d].%s", index, field)
}
