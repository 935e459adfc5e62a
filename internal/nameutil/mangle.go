package nameutil

// QualifiedName builds an owner-qualified name from a module/struct name
// and a member name, as the pretty printer uses to render an
// ExternalSymbol's target.
func QualifiedName(owner, member string) string {
	if owner == "" || member == "" {
		return ""
	}
	return owner + "_" + member
}
