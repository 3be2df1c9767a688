package project

// Type routes an employee's assigned hours into the recurring or one-time
// bucket. It is fixed at creation and never mutated.
type Type string

const (
	Recurring Type = "Recurrente"
	OneTime   Type = "Puntual"
)

var AllTypes = []Type{
	Recurring,
	OneTime,
}

func (t Type) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Status string

const (
	OnTrack   Status = "En Curso"
	AtRisk    Status = "En Riesgo"
	OffTrack  Status = "Retrasado"
	Completed Status = "Completado"
	Pending   Status = "Pendiente"
)

var AllStatuses = []Status{
	OnTrack,
	AtRisk,
	OffTrack,
	Completed,
	Pending,
}

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type TaskStatus string

const (
	TaskCompleted  TaskStatus = "Completado"
	TaskInProgress TaskStatus = "En Progreso"
	TaskToDo       TaskStatus = "Pendiente"
)

var AllTaskStatuses = []TaskStatus{
	TaskCompleted,
	TaskInProgress,
	TaskToDo,
}

func (s TaskStatus) IsValid() bool {
	for _, v := range AllTaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}
