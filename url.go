package gchart

import "strings"

// assemble joins params with "&" behind endpoint. With no params it returns
// the endpoint alone.
func assemble(endpoint string, params []Param) string {
	var sb strings.Builder
	sb.WriteString(endpoint)
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	return sb.String()
}
