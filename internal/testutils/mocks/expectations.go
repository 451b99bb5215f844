// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/repositories/monster"
	monstermock "github.com/KirkDiggler/statblock-importer/internal/repositories/monster/mock"
)

// ExpectMonsterCreate sets up a mock expectation for storing a monster. The
// stored monster is echoed back the way both repository implementations do.
func ExpectMonsterCreate(ctx context.Context, mockRepo *monstermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input monster.CreateInput) (*monster.CreateOutput, error) {
			return &monster.CreateOutput{Monster: input.Monster}, nil
		})
}

// ExpectMonsterGet sets up a mock expectation for getting a monster
func ExpectMonsterGet(
	ctx context.Context, mockRepo *monstermock.MockRepository,
	id string, m *drawsteel.Monster, err error,
) {
	var out *monster.GetOutput
	if err == nil {
		out = &monster.GetOutput{Monster: m}
	}
	mockRepo.EXPECT().
		Get(ctx, monster.GetInput{ID: id}).
		Return(out, err)
}

// ExpectMonsterDelete sets up a mock expectation for deleting a monster
func ExpectMonsterDelete(ctx context.Context, mockRepo *monstermock.MockRepository, id string, err error) {
	var out *monster.DeleteOutput
	if err == nil {
		out = &monster.DeleteOutput{}
	}
	mockRepo.EXPECT().
		Delete(ctx, monster.DeleteInput{ID: id}).
		Return(out, err)
}
