package domain

import "fmt"

type HomeworkStatus string

const (
	HomeworkStatusApproved  HomeworkStatus = "approved"
	HomeworkStatusReviewing HomeworkStatus = "reviewing"
	HomeworkStatusRejected  HomeworkStatus = "rejected"
)

var HomeworkStatuses = []HomeworkStatus{
	HomeworkStatusApproved,
	HomeworkStatusReviewing,
	HomeworkStatusRejected,
}

var verdicts = map[HomeworkStatus]string{
	HomeworkStatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	HomeworkStatusReviewing: "Работа взята на проверку ревьюером.",
	HomeworkStatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

func (s HomeworkStatus) Verdict() (string, bool) {
	verdict, ok := verdicts[s]
	return verdict, ok
}

// JSON keys of the homework statuses API.
const (
	KeyHomeworks    = "homeworks"
	KeyCurrentDate  = "current_date"
	KeyHomeworkName = "homework_name"
	KeyStatus       = "status"
)

// Response is a validated homework statuses answer. Homeworks are kept
// as decoded JSON values, newest first.
type Response struct {
	Homeworks   []any
	CurrentDate *int64
}

type Homework struct {
	Name   string
	Status HomeworkStatus
}

func (h *Homework) String() string {
	verdict, _ := h.Status.Verdict()
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", h.Name, verdict)
}
