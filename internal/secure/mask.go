package secure

import "strings"

// MaskPhone masks the middle of a phone number: 1234567890 -> 123****890.
func MaskPhone(phone string) string {
	if len(phone) <= 6 {
		return phone
	}
	return phone[:3] + strings.Repeat("*", len(phone)-6) + phone[len(phone)-3:]
}

// MaskEmail masks the local part: john@example.com -> j***@example.com.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}
	if len(local) <= 1 {
		return "*@" + domain
	}
	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}

// MaskName masks each word after its first letter: John Doe -> J*** D***.
func MaskName(name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		if len(part) > 1 {
			parts[i] = part[:1] + strings.Repeat("*", len(part)-1)
		} else {
			parts[i] = "*"
		}
	}
	return strings.Join(parts, " ")
}

// MaskField masks a field value according to its key so candidate data
// can appear in logs without exposing PII. Non-sensitive fields pass
// through unchanged.
func MaskField(key, value string) string {
	switch key {
	case "email":
		return MaskEmail(value)
	case "phone":
		return MaskPhone(value)
	case "name":
		return MaskName(value)
	case "location":
		return MaskName(value)
	default:
		return value
	}
}
