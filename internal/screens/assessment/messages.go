package assessment

import "github.com/yusuke-kurosawa/diagnoleads-widget/api"

// assessmentLoadedMsg is sent when the assessment fetch resolves.
type assessmentLoadedMsg struct {
	Assessment *api.Assessment
	Err        error
}
