package domain

// ActivityIdle is the sentinel activity assigned when a user connects.
// Consumers compare against it for equality only; the registry stores
// activity strings opaquely.
const ActivityIdle = "Idle"
