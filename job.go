package jobfetch

// Job is a normalized job posting.
//
// All fields are trimmed. Description is plain text with one non-empty line
// per block-level element of the source markup.
type Job struct {
	Title       string
	Company     string
	Description string
}

// Usable reports whether at least one field is non-empty.
func (j *Job) Usable() bool {
	if j == nil {
		return false
	}
	return j.Title != "" || j.Company != "" || j.Description != ""
}

// Validate returns an error if the job lacks the fields needed to file it.
func (j *Job) Validate() error {
	if j == nil || j.Title == "" || j.Company == "" {
		return Errorf(EINVALID, "Job title or company missing in scraped data.")
	}
	return nil
}

// JobFiles lists the paths written for a job.
type JobFiles struct {
	Folder      string
	Description string
	Prompt      string // empty when no prompt was written
}
