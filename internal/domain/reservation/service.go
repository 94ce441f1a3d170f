package reservation

// ===============================
// Service Types
// ===============================

type ServiceType string

const (
	ServicePreventiveMaintenance ServiceType = "preventive maintenance"
	ServiceOilChange             ServiceType = "oil change"
	ServiceBrakeInspection       ServiceType = "brake inspection"
	ServiceAlignmentBalancing    ServiceType = "alignment & balancing"
	ServiceEngineInspection      ServiceType = "engine inspection"
	ServiceTireChange            ServiceType = "tire change"
	ServiceElectricalInspection  ServiceType = "electrical inspection"
	ServiceGeneralDiagnostics    ServiceType = "general diagnostics"
	ServiceOther                 ServiceType = "other"
)

var serviceTypes = map[ServiceType]bool{
	ServicePreventiveMaintenance: true,
	ServiceOilChange:             true,
	ServiceBrakeInspection:       true,
	ServiceAlignmentBalancing:    true,
	ServiceEngineInspection:      true,
	ServiceTireChange:            true,
	ServiceElectricalInspection:  true,
	ServiceGeneralDiagnostics:    true,
	ServiceOther:                 true,
}

func (s ServiceType) Valid() bool {
	return serviceTypes[s]
}

// ServiceTypes lists every accepted service type, for error messages.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServicePreventiveMaintenance,
		ServiceOilChange,
		ServiceBrakeInspection,
		ServiceAlignmentBalancing,
		ServiceEngineInspection,
		ServiceTireChange,
		ServiceElectricalInspection,
		ServiceGeneralDiagnostics,
		ServiceOther,
	}
}
