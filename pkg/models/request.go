package models

// JobSearchRequest represents the request payload for a job opportunity search
type JobSearchRequest struct {
	JobTitle        string `json:"job_title" form:"job_title" validate:"required"`
	Location        string `json:"location" form:"location"`
	ExperienceLevel string `json:"experience_level" form:"experience_level"`
	Skills          string `json:"skills" form:"skills"`
}

// DownloadLatexRequest represents the request payload for downloading a
// generated LaTeX document as a file attachment
type DownloadLatexRequest struct {
	LatexContent string `json:"latex_content" validate:"required"`
	Filename     string `json:"filename"`
}

// UploadedDocument carries the raw bytes of an uploaded CV file. The filename
// is used only to select the extraction strategy by extension.
type UploadedDocument struct {
	Filename string
	Data     []byte
}

// CvInput is the resolved "file upload or raw text field" union coming from
// the multipart endpoints. At most one of Document and Text is set; it is
// flattened into plain text at the HTTP boundary so orchestrators never see
// file formats.
type CvInput struct {
	Document *UploadedDocument
	Text     string
}
