package lifecycle

// Entity is an aggregate whose status follows one of the transition tables.
type Entity interface {
	EventSource
	Kind() Kind
	StatusName() string
}
