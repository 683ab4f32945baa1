// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package service

import (
	"context"
	"fmt"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/store"
	"github.com/sms-platform/authgate/models"
)

// attemptLogService implements [AttemptLogger] and [AuditService] over the
// append-only attempt log.
//
// LogAttempt is a best-effort side channel: the repository commits each
// record independently of any caller transaction, and a failed write is
// reported to the operational log only — it never reaches the caller of
// Login or VerifySecondFactor.
type attemptLogService struct {
	attemptRepository store.AttemptRepository
	logger            *logger.Logger
}

// NewAttemptLogService constructs the attempt-log service over the given
// repository.
func NewAttemptLogService(attemptRepository store.AttemptRepository, logger *logger.Logger) *attemptLogService {
	return &attemptLogService{
		attemptRepository: attemptRepository,
		logger:            logger,
	}
}

// LogAttempt appends one audit record. Errors are swallowed by contract.
func (s *attemptLogService) LogAttempt(ctx context.Context, identifier *string, succeeded bool, detail string, secondFactor bool) {
	log := logger.FromContext(ctx)

	_, err := s.attemptRepository.Append(ctx, models.AttemptRecord{
		Identifier:   identifier,
		Succeeded:    succeeded,
		Detail:       detail,
		SecondFactor: secondFactor,
	})
	if err != nil {
		log.Err(err).
			Bool("succeeded", succeeded).
			Str("detail", detail).
			Msg("failed to write attempt record")
	}
}

// ListAttempts returns attempt records matching filter, newest first.
func (s *attemptLogService) ListAttempts(ctx context.Context, filter models.AttemptFilter) ([]models.AttemptRecord, error) {
	log := logger.FromContext(ctx)

	records, err := s.attemptRepository.List(ctx, filter)
	if err != nil {
		log.Err(err).Msg("attempt log query failed")
		return nil, fmt.Errorf("attempt log query failed: %w", err)
	}

	return records, nil
}
