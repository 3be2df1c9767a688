package insight

type Topic string

const (
	TopicOverloaded     Topic = "overloaded"
	TopicUnderutilized  Topic = "underutilized"
	TopicRiskyProjects  Topic = "risky_projects"
	TopicSlackMessage   Topic = "slack_message"
	TopicGeneralSummary Topic = "general_summary"
)

var AllTopics = []Topic{
	TopicOverloaded,
	TopicUnderutilized,
	TopicRiskyProjects,
	TopicSlackMessage,
	TopicGeneralSummary,
}

func (t Topic) IsValid() bool {
	for _, v := range AllTopics {
		if t == v {
			return true
		}
	}
	return false
}
