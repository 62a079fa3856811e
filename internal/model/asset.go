package model

type ServiceType string

var (
	ServiceAccess  ServiceType = "access"
	ServiceCompute ServiceType = "compute"
)

// AssetTypeAlgorithm is the metadata type required of algorithm assets.
const AssetTypeAlgorithm = "algorithm"

// Asset is the resolved DDO subset the validators need. Owner is the
// publisher address that order payments must reach.
type Asset struct {
	DID      string    `json:"id"`
	Owner    string    `json:"owner"`
	Services []Service `json:"service"`
	Metadata Metadata  `json:"metadata"`
}

type Metadata struct {
	Main MetadataMain `json:"main"`
}

type MetadataMain struct {
	Type      string            `json:"type"`
	Name      string            `json:"name"`
	Owner     string            `json:"author"`
	Files     []File            `json:"files,omitempty"`
	Algorithm *AlgorithmDetails `json:"algorithm,omitempty"`
}

// File is one downloadable file attached to an asset.
type File struct {
	Index       int    `json:"index"`
	URL         string `json:"url"`
	ContentType string `json:"contentType,omitempty"`
}

// AlgorithmDetails is the registered metadata of an algorithm asset.
type AlgorithmDetails struct {
	Language  string    `json:"language,omitempty"`
	Format    string    `json:"format,omitempty"`
	Version   string    `json:"version,omitempty"`
	Container Container `json:"container"`
}

// Service describes one service attached to an asset. Cost is the service
// price as a decimal string in 18-decimal base units.
type Service struct {
	Index   int            `json:"index"`
	Type    ServiceType    `json:"type"`
	Cost    string         `json:"cost,omitempty"`
	Privacy *PrivacyPolicy `json:"privacy,omitempty"`
}

// PrivacyPolicy restricts what a compute service will run.
// A nil policy allows raw algorithms and trusts every algorithm.
type PrivacyPolicy struct {
	AllowRawAlgorithm bool     `json:"allowRawAlgorithm"`
	TrustedAlgorithms []string `json:"trustedAlgorithms"`
}

// ServiceByIndex returns the service with the given index, or nil.
func (a *Asset) ServiceByIndex(index int) *Service {
	for i := range a.Services {
		if a.Services[i].Index == index {
			return &a.Services[i]
		}
	}
	return nil
}

// AllowsRawAlgorithm reports whether the service permits inline algorithm code.
func (s *Service) AllowsRawAlgorithm() bool {
	if s.Privacy == nil {
		return true
	}
	return s.Privacy.AllowRawAlgorithm
}

// TrustsAlgorithm reports whether the referenced algorithm may run against
// this service. An empty allow-list trusts everything.
func (s *Service) TrustsAlgorithm(did string) bool {
	if s.Privacy == nil || len(s.Privacy.TrustedAlgorithms) == 0 {
		return true
	}
	for _, trusted := range s.Privacy.TrustedAlgorithms {
		if trusted == did {
			return true
		}
	}
	return false
}
