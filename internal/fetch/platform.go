// Package fetch - platform.go provides job board detection and board-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform
	PlatformWorkday Platform = "workday"
	// PlatformAshby is the Ashby ATS platform
	PlatformAshby Platform = "ashby"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// platformHosts maps host fragments to their platform.
var platformHosts = []struct {
	fragment string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"ashbyhq.com", PlatformAshby},
}

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for _, entry := range platformHosts {
		if strings.Contains(host, entry.fragment) {
			return entry.platform
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors for a specific platform,
// falling back to the generic job posting selectors.
func PlatformContentSelectors(platform Platform) []string {
	var specific []string
	switch platform {
	case PlatformGreenhouse:
		specific = []string{".job__description.body", ".job__description", ".job-description__content", ".job-post-container"}
	case PlatformLever:
		specific = []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description"}
	case PlatformWorkday:
		specific = []string{"[data-automation-id='jobDescription']", ".job-description"}
	case PlatformAshby:
		specific = []string{"[class*='descriptionText']", ".ashby-job-posting-right-pane"}
	}
	return append(specific, JobPostingSelectors()...)
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
// Application forms and EEO blocks never help describe the role.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		"[data-testid='application-form']",
		".voluntary-disclosure",
		".eeo-statement",
		".eeo-section",
		".legal-disclosure",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformGreenhouse:
		return append(common, ".application--wrapper", ".voluntary-self-id", "#usa_self_id_section")
	case PlatformLever:
		return append(common, ".apply-section", ".lever-application-form", ".posting-apply")
	case PlatformWorkday:
		return append(common, "[data-automation-id='applyButton']", ".application-section")
	case PlatformAshby:
		return append(common, "[class*='applicationForm']")
	default:
		return common
	}
}
