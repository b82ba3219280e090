// Package testutil provides an in-memory store and seed helpers shared by
// package tests.
package testutil

import (
	"context"
	"testing"

	"insurance/internal/infra"
	"insurance/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the full schema.
// A single connection keeps every query, transactional or not, on the same
// in-memory database.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(infra.Models()...); err != nil {
		tb.Fatalf("automigrate: %v", err)
	}
	return db
}

func SeedProduct(tb testing.TB, db *gorm.DB, code, name string) *model.Product {
	tb.Helper()
	p := &model.Product{ProductCode: code, ProductName: name}
	if err := db.WithContext(context.Background()).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedHolder(tb testing.TB, db *gorm.DB, passport, phone string) *model.Holder {
	tb.Helper()
	h := &model.Holder{
		HolderName:     "Igor",
		HolderSurname:  "Dosinchuk",
		PhoneNumber:    phone,
		Email:          "idosinchuk@example.com",
		PassportNumber: passport,
	}
	if err := db.WithContext(context.Background()).Create(h).Error; err != nil {
		tb.Fatalf("seed holder: %v", err)
	}
	return h
}

func SeedVehicle(tb testing.TB, db *gorm.DB, plate, brand string) *model.Vehicle {
	tb.Helper()
	v := &model.Vehicle{LicensePlate: plate, Brand: brand}
	if err := db.WithContext(context.Background()).Create(v).Error; err != nil {
		tb.Fatalf("seed vehicle: %v", err)
	}
	return v
}

func SeedPolicy(tb testing.TB, db *gorm.DB, code string, cost int64, p *model.Product, h *model.Holder, v *model.Vehicle) *model.Policy {
	tb.Helper()
	pol := &model.Policy{
		PolicyCode: code,
		Cost:       decimal.NewFromInt(cost),
		ProductID:  p.ID,
		HolderID:   h.ID,
		VehicleID:  v.ID,
	}
	if err := db.WithContext(context.Background()).Create(pol).Error; err != nil {
		tb.Fatalf("seed policy: %v", err)
	}
	return pol
}
