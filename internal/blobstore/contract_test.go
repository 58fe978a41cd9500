package blobstore

import (
	"context"

	"github.com/stretchr/testify/suite"

	"mealog/pkg/platform/sentinel"
)

// contractSuite exercises the Store contract. Backend suites embed it and set
// newStore.
type contractSuite struct {
	suite.Suite
	newStore func() Store
	store    Store
	ctx      context.Context
}

func (s *contractSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
}

func (s *contractSuite) TestGetMissingKey() {
	_, err := s.store.Get(s.ctx, "meal_records")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *contractSuite) TestSetThenGet() {
	s.Run("round trips the value", func() {
		s.Require().NoError(s.store.Set(s.ctx, "meal_records", `[{"date":"2024-07-23"}]`))

		v, err := s.store.Get(s.ctx, "meal_records")
		s.Require().NoError(err)
		s.Equal(`[{"date":"2024-07-23"}]`, v)
	})

	s.Run("overwrites the previous value", func() {
		s.Require().NoError(s.store.Set(s.ctx, "meal_records", `[]`))

		v, err := s.store.Get(s.ctx, "meal_records")
		s.Require().NoError(err)
		s.Equal(`[]`, v)
	})

	s.Run("keys are independent", func() {
		s.Require().NoError(s.store.Set(s.ctx, "meal_records:schema_version", "1"))

		v, err := s.store.Get(s.ctx, "meal_records")
		s.Require().NoError(err)
		s.Equal(`[]`, v)
	})
}

func (s *contractSuite) TestUnicodeValues() {
	value := `[{"meals":[{"time":"昼","items":[{"name":"カレー"}]}]}]`
	s.Require().NoError(s.store.Set(s.ctx, "k", value))

	v, err := s.store.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal(value, v)
}
