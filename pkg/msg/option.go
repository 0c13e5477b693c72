package msg

type OutputFormat uint

const (
	OutputFormatUndefined OutputFormat = iota
	OutputFormatHTML
)

type PredefinedResponse struct {
	Text string
}

type PredefinedResponseOptions struct {
	Responses []PredefinedResponse
	// IsTemp hides the buttons once one of them is pressed
	IsTemp bool
	Remove bool
}

type Options struct {
	OutputFormat              OutputFormat
	IsRespToHiddenMessage     bool
	PredefinedResponseOptions *PredefinedResponseOptions
	ImageRef                  string
}

func (o *Options) WithFormat(f OutputFormat) {
	o.OutputFormat = f
}

func (o *Options) WithIsResponseToHiddenMessage() {
	o.IsRespToHiddenMessage = true
}

func (o *Options) WithPredefinedResponse(resp PredefinedResponse) {
	if o.PredefinedResponseOptions == nil {
		o.PredefinedResponseOptions = &PredefinedResponseOptions{}
	}

	o.PredefinedResponseOptions.Responses = append(o.PredefinedResponseOptions.Responses, resp)
}

func (o *Options) WithPredefinedResponses(texts ...string) {
	for _, t := range texts {
		o.WithPredefinedResponse(PredefinedResponse{Text: t})
	}
}

func (o *Options) WithIsTempPredefinedResponse() {
	if o.PredefinedResponseOptions == nil {
		o.PredefinedResponseOptions = &PredefinedResponseOptions{}
	}
	o.PredefinedResponseOptions.IsTemp = true
}

func (o *Options) WithRemovedPredefinedResponses() {
	if o.PredefinedResponseOptions == nil {
		o.PredefinedResponseOptions = &PredefinedResponseOptions{}
	}
	o.PredefinedResponseOptions.Remove = true
}

func (o *Options) WithImage(ref string) {
	o.ImageRef = ref
}

func (o *Options) GetFormat() OutputFormat {
	if o == nil {
		return OutputFormatUndefined
	}

	return o.OutputFormat
}

func (o *Options) IsResponseToHiddenMessage() bool {
	if o == nil {
		return false
	}

	return o.IsRespToHiddenMessage
}

func (o *Options) GetPredefinedResponses() []PredefinedResponse {
	if o == nil || o.PredefinedResponseOptions == nil {
		return nil
	}

	return o.PredefinedResponseOptions.Responses
}

func (o *Options) IsTempPredefinedResponse() bool {
	if o == nil || o.PredefinedResponseOptions == nil {
		return false
	}

	return o.PredefinedResponseOptions.IsTemp
}

func (o *Options) ShouldRemovePredefinedResponses() bool {
	if o == nil || o.PredefinedResponseOptions == nil {
		return false
	}

	return o.PredefinedResponseOptions.Remove
}

func (o *Options) GetImage() string {
	if o == nil {
		return ""
	}

	return o.ImageRef
}
