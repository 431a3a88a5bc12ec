package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDirectory(t *testing.T) (ContactService, *mocks.MockContactRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockContactRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewContactDirectory(repoMock, logger), repoMock
}

func TestContactDirectory_Add(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectory(t)
	ctx := context.Background()
	existing := []models.Contact{
		{ID: uuid.New(), Name: "Maya", Phone: "+91 98450 00001", IsPrimary: true},
	}
	input := models.Contact{Name: "Ravi", Phone: "+91 98450 00002", Relation: "friend"}

	// Ожидания: справочник сохраняется целиком, новый контакт в конце
	repoMock.EXPECT().Load(ctx).Return(existing, nil).Times(1)

	var saved []models.Contact
	repoMock.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, contacts []models.Contact) error {
			saved = contacts
			return nil
		}).
		Times(1)

	// Действие
	added, err := svc.Add(ctx, input)

	// Проверки: контакту присвоен id, остальные поля нетронуты
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, added.ID)
	assert.Equal(t, input.Name, added.Name)
	assert.Equal(t, input.Phone, added.Phone)
	assert.Equal(t, input.Relation, added.Relation)

	require.Len(t, saved, 2)
	assert.Equal(t, existing[0], saved[0])
	assert.Equal(t, added, saved[1])
}

func TestContactDirectory_Add_SaveFailure(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectory(t)
	ctx := context.Background()
	saveErr := fmt.Errorf("redis: connection refused")

	// Ожидания
	repoMock.EXPECT().Load(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(saveErr).Times(1)

	// Действие
	_, err := svc.Add(ctx, models.Contact{Name: "Ravi", Phone: "+91 98450 00002"})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, saveErr)
}

func TestContactDirectory_Remove(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectory(t)
	ctx := context.Background()
	target := uuid.New()
	existing := []models.Contact{
		{ID: target, Name: "Maya", Phone: "+91 98450 00001"},
		{ID: uuid.New(), Name: "Ravi", Phone: "+91 98450 00002"},
	}

	// Ожидания
	repoMock.EXPECT().Load(ctx).Return(existing, nil).Times(1)

	var saved []models.Contact
	repoMock.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, contacts []models.Contact) error {
			saved = contacts
			return nil
		}).
		Times(1)

	// Действие
	err := svc.Remove(ctx, target)

	// Проверки
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Ravi", saved[0].Name)
}

func TestContactDirectory_Remove_AbsentIsNoop(t *testing.T) {
	// Подготовка: удаление несуществующего контакта не ошибка
	// и не трогает хранилище
	svc, repoMock := newTestDirectory(t)
	ctx := context.Background()
	existing := []models.Contact{
		{ID: uuid.New(), Name: "Maya", Phone: "+91 98450 00001"},
	}

	// Ожидания: Save не вызывается
	repoMock.EXPECT().Load(ctx).Return(existing, nil).Times(1)

	// Действие
	err := svc.Remove(ctx, uuid.New())

	// Проверки
	require.NoError(t, err)
}

func TestContactDirectory_PrimaryOnly(t *testing.T) {
	// Подготовка: из трех контактов основными помечены два
	svc, repoMock := newTestDirectory(t)
	ctx := context.Background()
	existing := []models.Contact{
		{ID: uuid.New(), Name: "Maya", IsPrimary: true},
		{ID: uuid.New(), Name: "Ravi"},
		{ID: uuid.New(), Name: "Priya", IsPrimary: true},
	}

	// Ожидания
	repoMock.EXPECT().Load(ctx).Return(existing, nil).Times(1)

	// Действие
	primary, err := svc.PrimaryOnly(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, primary, 2)
	assert.Equal(t, "Maya", primary[0].Name)
	assert.Equal(t, "Priya", primary[1].Name)
}

func TestContactDirectory_List_LoadFailure(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectory(t)
	ctx := context.Background()
	loadErr := fmt.Errorf("redis: connection refused")

	// Ожидания
	repoMock.EXPECT().Load(ctx).Return(nil, loadErr).Times(1)

	// Действие
	contacts, err := svc.List(ctx)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.Nil(t, contacts)
}
