package model

type Subscriber struct {
	Object
	Metadata SubscriberMetadata `json:"metadata"`
}

type SubscriberMetadata struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
