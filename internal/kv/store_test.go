package kv_test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"plantdiary/internal/kv"
	"plantdiary/internal/kv/mocks"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

type item struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func TestStore_GetDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		mockSetup func(*mocks.MockBackend)
		want      int
	}{
		{
			name: "missing key",
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().Get(kv.KeyPlants).Return(nil, kv.ErrKeyNotFound)
			},
			want: 0,
		},
		{
			name: "backend read failure",
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().Get(kv.KeyPlants).Return(nil, errors.New("disk on fire"))
			},
			want: 0,
		},
		{
			name: "corrupt blob",
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().Get(kv.KeyPlants).Return([]byte(`{not json`), nil)
			},
			want: 0,
		},
		{
			name: "empty blob",
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().Get(kv.KeyPlants).Return([]byte{}, nil)
			},
			want: 0,
		},
		{
			name: "stored collection",
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().Get(kv.KeyPlants).Return([]byte(`[{"_id":"a","name":"Fern"},{"_id":"b","name":"Ivy"}]`), nil)
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := mocks.NewMockBackend(ctrl)
			tt.mockSetup(backend)
			store := kv.NewStore(backend, &recordingNotifier{})

			got := kv.Get(store, kv.KeyPlants, []item{})
			if got == nil {
				t.Fatal("Get() returned nil, want default slice")
			}
			if len(got) != tt.want {
				t.Errorf("len(Get()) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestStore_SetFailureNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Set(kv.KeyRecords, gomock.Any()).Return(kv.ErrQuotaExceeded)

	notifier := &recordingNotifier{}
	store := kv.NewStore(backend, notifier)

	err := store.Set(kv.KeyRecords, []item{{ID: "1", Name: "water"}})
	if !errors.Is(err, kv.ErrPersistence) {
		t.Errorf("Set() error = %v, want ErrPersistence", err)
	}
	if !errors.Is(err, kv.ErrQuotaExceeded) {
		t.Errorf("Set() error = %v, want wrapped ErrQuotaExceeded", err)
	}
	if len(notifier.messages) != 1 {
		t.Errorf("notifications = %v, want exactly one", notifier.messages)
	}
}

func TestStore_SetEncodesJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Set(kv.KeyPlants, []byte(`[{"_id":"1","name":"Fern"}]`)).Return(nil)

	notifier := &recordingNotifier{}
	store := kv.NewStore(backend, notifier)

	if err := store.Set(kv.KeyPlants, []item{{ID: "1", Name: "Fern"}}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if len(notifier.messages) != 0 {
		t.Errorf("notifications = %v, want none", notifier.messages)
	}
}

func TestStore_EncodeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	notifier := &recordingNotifier{}
	store := kv.NewStore(backend, notifier)

	err := store.Set(kv.KeyPlants, make(chan int))
	if !errors.Is(err, kv.ErrPersistence) {
		t.Errorf("Set() error = %v, want ErrPersistence", err)
	}
	if len(notifier.messages) != 1 {
		t.Errorf("notifications = %v, want one", notifier.messages)
	}
}

func TestStore_RemoveClearInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Remove(kv.KeySyncState).Return(errors.New("locked"))
	backend.EXPECT().Clear().Return(nil)
	backend.EXPECT().Info().Return(kv.Info{Keys: []string{"plants"}, CurrentSize: 12}, nil)

	store := kv.NewStore(backend, nil)

	if err := store.Remove(kv.KeySyncState); !errors.Is(err, kv.ErrPersistence) {
		t.Errorf("Remove() error = %v, want ErrPersistence", err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() error = %v", err)
	}
	info, err := store.Info()
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if info.CurrentSize != 12 {
		t.Errorf("Info().CurrentSize = %d, want 12", info.CurrentSize)
	}
}

func TestStore_MemoryRoundTrip(t *testing.T) {
	store := kv.NewStore(kv.NewMemoryBackend(0), nil)

	if err := store.Set(kv.KeyPlants, []item{{ID: "1", Name: "Fern"}}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got := kv.Get(store, kv.KeyPlants, []item{})
	if len(got) != 1 || got[0].Name != "Fern" {
		t.Errorf("Get() = %+v, want [Fern]", got)
	}
}
