package domain

// EntryType distinguishes clock-bounded entries from duration-only entries.
type EntryType string

const (
	// EntryTypeTimed is an entry bounded by explicit start/end timestamps,
	// optionally still open (no end time yet).
	EntryTypeTimed EntryType = "timed"
	// EntryTypeDuration is an entry recording only a date and a total-hours
	// value, with no clock times.
	EntryTypeDuration EntryType = "duration"
)

func (t EntryType) String() string { return string(t) }

func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeTimed, EntryTypeDuration:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeTimeEntry EntityType = "TIME_ENTRY"
	EntityTypeUser      EntityType = "USER"
	EntityTypeWorksite  EntityType = "WORKSITE"
	EntityTypeProject   EntityType = "PROJECT"
	EntityTypeTask      EntityType = "TASK"
	EntityTypeSettings  EntityType = "SETTINGS"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeTimeEntry, EntityTypeUser, EntityTypeWorksite,
		EntityTypeProject, EntityTypeTask, EntityTypeSettings:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
