package html

// CollectMeta maps the property (or name) of every <meta> tag in s to its
// content. Tags with an empty content are ignored. The first declaration of
// a key wins.
func CollectMeta(s string) map[string]string {
	meta := make(map[string]string)
	for tok := range Tokens(s) {
		if tok.Type != StartTag || tok.Tag != "meta" {
			continue
		}
		key, _ := tok.Attr("property")
		if key == "" {
			key, _ = tok.Attr("name")
		}
		content, _ := tok.Attr("content")
		if key == "" || content == "" {
			continue
		}
		if _, ok := meta[key]; !ok {
			meta[key] = content
		}
	}
	return meta
}
