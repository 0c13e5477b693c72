package msg

type Sender struct {
	ID        string
	FirstName string
	LastName  string
}

func (s *Sender) GetID() string {
	if s == nil {
		return ""
	}

	return s.ID
}

type Request struct {
	Platform string
	ID       string
	Sender   *Sender
	Message  string
	Meta     map[string]interface{}
}

func (r *Request) SetMeta(key string, val interface{}) {
	if r.Meta == nil {
		r.Meta = map[string]interface{}{}
	}

	r.Meta[key] = val
}

type Type uint

const (
	Undefined Type = iota
	Success
	Error
	Prompt
)

type ResponseMessage struct {
	Message string
	Type    Type
	Options *Options
}

type Response struct {
	Messages []ResponseMessage
}

func NewResponse(text string, t Type, op *Options) *Response {
	return &Response{
		Messages: []ResponseMessage{
			{
				Message: text,
				Type:    t,
				Options: op,
			},
		},
	}
}

func NewSuccess(text string) *Response {
	return NewResponse(text, Success, nil)
}

func NewError(text string) *Response {
	return NewResponse(text, Error, nil)
}

func (r *Response) Add(m ResponseMessage) {
	r.Messages = append(r.Messages, m)
}

func (r *Response) IsEmpty() bool {
	if r == nil {
		return true
	}

	for _, m := range r.Messages {
		if m.Message != "" || m.Options.GetImage() != "" {
			return false
		}
	}

	return true
}
