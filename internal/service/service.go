package service

import (
	"context"
	"fmt"
	"net/url"

	"insurance/internal/apierror"
	"insurance/internal/metrics"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// API base path used to build Location references for written resources.
const basePath = "/api/v1"

// Entity labels, used in logs and metrics.
const (
	entityProduct = "product"
	entityHolder  = "holder"
	entityVehicle = "vehicle"
	entityPolicy  = "policy"
)

// runTx executes fn inside one GORM transaction. Every check-then-act
// sequence in this package goes through it, so a failed check never leaves a
// partial write behind.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

// location is the canonical path of a resource addressed by natural key.
func location(collection, key string) string {
	return basePath + "/" + collection + "/" + url.PathEscape(key)
}

// finish records the outcome of a write operation. Domain rejections are
// counted and returned untouched; anything else is a store fault, logged and
// wrapped with op.
func finish(entity, op string, err error) error {
	if err == nil {
		metrics.RecordWrite(entity, op)
		return nil
	}
	if derr, ok := apierror.As(err); ok {
		metrics.RecordRejection(entity, derr.Kind.Code())
		return err
	}
	log.Error().Err(err).Str("entity", entity).Str("op", op).Msg("store failure")
	return fmt.Errorf("%s %s: %w", op, entity, err)
}

// ── Domain errors ────────────────────────────────────────────────────────────

func productExists(code string) error {
	return apierror.Conflict(fmt.Sprintf("Product Code %s already exists in database!", code))
}

func productNotFound(code string) error {
	return apierror.NotFound(fmt.Sprintf("Product Code %s Not Found!", code))
}

func holderExists(passport string) error {
	return apierror.Conflict(fmt.Sprintf("Passport Number %s already exists in database!", passport))
}

func holderNotFound(passport string) error {
	return apierror.NotFound(fmt.Sprintf("Passport Number %s Not Found!", passport))
}

func holderUnchanged(passport string) error {
	return apierror.NoChanges(fmt.Sprintf("No changes detected for holder with Passport Number %s", passport))
}

func vehicleExists(plate string) error {
	return apierror.Conflict(fmt.Sprintf("License Plate %s already exists in database!", plate))
}

func vehicleNotFound(plate string) error {
	return apierror.NotFound(fmt.Sprintf("License Plate %s Not Found!", plate))
}

func policyExists(code string) error {
	return apierror.Conflict(fmt.Sprintf("Policy Code %s already exists in database!", code))
}

func policyNotFound(code string) error {
	return apierror.NotFound(fmt.Sprintf("Policy Code %s Not Found!", code))
}

// Referenced records of a policy that fail to resolve.

func missingProduct(code string) error {
	return apierror.NotFound(fmt.Sprintf("Product Code %s does not exist!", code))
}

func missingHolder(passport string) error {
	return apierror.NotFound(fmt.Sprintf("Holder with Passport Number %s does not exist!", passport))
}

func missingVehicle(plate string) error {
	return apierror.NotFound(fmt.Sprintf("Vehicle with License Plate %s does not exist!", plate))
}
