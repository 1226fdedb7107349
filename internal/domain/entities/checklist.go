package entities

// Checklist item keys, in display order
const (
	ChecklistAccountCreated           = "account_created"
	ChecklistEmailVerified            = "email_verified"
	ChecklistBusinessTypeSelected     = "business_type_selected"
	ChecklistCapabilitiesConfigured   = "capabilities_configured"
	ChecklistBusinessDetailsCompleted = "business_details_completed"
	ChecklistLogoUploaded             = "logo_uploaded"
	ChecklistDocumentsUploaded        = "documents_uploaded"
	ChecklistApplicationSubmitted     = "application_submitted"
	ChecklistAdminApproved            = "admin_approved"
)

// ChecklistItem is one boolean precondition of merchant onboarding
type ChecklistItem struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// Checklist is the derived onboarding completion state of a merchant
type Checklist struct {
	Items                []ChecklistItem `json:"items"`
	CompletedCount       int             `json:"completedCount"`
	TotalCount           int             `json:"totalCount"`
	CompletionPercentage int             `json:"completionPercentage"`
}

// Item returns the item with the given key, or nil
func (c *Checklist) Item(key string) *ChecklistItem {
	for i := range c.Items {
		if c.Items[i].Key == key {
			return &c.Items[i]
		}
	}
	return nil
}
