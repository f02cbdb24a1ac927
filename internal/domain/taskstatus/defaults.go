package taskstatus

// Defaults returns the statuses every installation starts with.
func Defaults() []Snapshot {
	return []Snapshot{
		{ID: 1, Name: "Regular task", Color: "White"},
		{ID: 2, Name: "Important task", Color: "LemonChiffon"},
		{ID: 3, Name: "Critical task", Color: "LightSalmon"},
	}
}
