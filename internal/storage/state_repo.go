package storage

import (
	"plantdiary/internal/kv"
	"plantdiary/internal/models"
)

// StateRepo holds the singleton records and the offline operation queue.
type StateRepo struct {
	b *base
}

// UserInfo returns the stored profile or the signed-out default.
func (r *StateRepo) UserInfo() models.UserInfo {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return kv.Get(r.b.store, kv.KeyUserInfo, models.UserInfo{Nickname: "Not signed in"})
}

// SetUserInfo replaces the stored profile.
func (r *StateRepo) SetUserInfo(info models.UserInfo) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.store.Set(kv.KeyUserInfo, info)
}

// SyncState returns the stored sync bookkeeping or its zero value.
func (r *StateRepo) SyncState() models.SyncState {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return kv.Get(r.b.store, kv.KeySyncState, models.SyncState{})
}

// SetSyncState replaces the sync bookkeeping.
func (r *StateRepo) SetSyncState(state models.SyncState) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.store.Set(kv.KeySyncState, state)
}

// OfflineQueue returns the queued operations, oldest first.
func (r *StateRepo) OfflineQueue() []models.OfflineOperation {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.loadQueue()
}

// AddOfflineOperation stamps op with an ID and time and appends it to the queue.
func (r *StateRepo) AddOfflineOperation(op models.OfflineOperation) (models.OfflineOperation, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	op.ID = r.b.newID()
	op.Timestamp = r.b.now()

	queue := append(r.loadQueue(), op)
	if err := r.b.store.Set(kv.KeyOfflineQueue, queue); err != nil {
		return models.OfflineOperation{}, err
	}
	return op, nil
}

// ClearOfflineQueue empties the queue.
func (r *StateRepo) ClearOfflineQueue() error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.store.Set(kv.KeyOfflineQueue, []models.OfflineOperation{})
}

func (r *StateRepo) loadQueue() []models.OfflineOperation {
	queue := kv.Get(r.b.store, kv.KeyOfflineQueue, []models.OfflineOperation{})
	if queue == nil {
		return []models.OfflineOperation{}
	}
	return queue
}
