//go:build !unix

package profilekey

func fileIdentityFromSys(_ any) (FileIdentity, error) {
	return FileIdentity{}, ErrNoFileIdentity
}
