// Package mockdata generates the demo shipment dataset the dashboard runs on
// when no real store is configured.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"freightdash/models"
)

var customers = []string{
	"ABC Manufacturing", "XYZ Logistics", "Global Imports", "Tech Solutions", "Ocean Freight Co",
	"Industrial Supply", "Retail Distribution", "Metro Transport", "Coastal Shipping", "Mountain Express",
	"Desert Logistics", "Urban Freight", "Rural Transport", "Express Delivery", "Premium Shipping",
	"Standard Freight", "Quick Logistics", "Reliable Transport", "Fast Track Shipping", "Elite Logistics",
}

var carriers = []string{
	"FastFreight Inc", "WestCoast Transport", "Southeast Express", "Texas Transport", "Pacific Shipping",
	"Steel City Transport", "Tennessee Express", "Mountain Transport", "Coastal Express", "Desert Transport",
	"Urban Express", "Rural Freight", "Express Logistics", "Premium Transport", "Standard Express",
	"Quick Transport", "Reliable Express", "Fast Track Transport", "Elite Express", "Global Transport",
}

var salesReps = []string{
	"John Smith", "Sarah Wilson", "Mike Johnson", "David Brown", "Lisa Davis", "Tom Wilson", "Mark Johnson",
	"Amy Chen", "Rachel Green", "Chris Lee", "Mark Thompson", "Jennifer Adams", "Amanda Foster", "Robert Clark",
	"Emily White", "Michael Black", "Jessica Brown", "Daniel Lee", "Ashley Garcia", "Matthew Taylor",
}

var regions = []string{"Northeast", "West Coast", "Southeast", "Mountain", "Midwest", "Texas", "Northwest"}

var appointmentStatuses = []models.AppointmentStatus{
	models.AppointmentNotRequired, models.AppointmentRequested,
	models.AppointmentConfirmed, models.AppointmentPending,
}

var priorities = []models.Priority{models.PriorityHot, models.PriorityStandard, models.PriorityTrace}

var assignedTeams = []string{"Dispatch Team", "Sales Team", "Operations Team", "Quote Team", "Delivery Team", "Customer Service"}

var equipmentTypes = []string{"Van", "Reefer", "Flatbed"}

var productDescriptions = []string{
	"Automotive parts", "Electronics", "Import goods", "Computer equipment", "Marine equipment",
	"Industrial equipment", "Retail merchandise", "Food products", "Pharmaceuticals", "Textiles",
	"Machinery", "Chemicals", "Furniture", "Appliances", "Building materials", "Agricultural products",
	"Medical supplies", "Clothing", "Books", "Toys", "Sports equipment", "Musical instruments",
}

var trackingNotes = []string{
	"Picked up from shipper", "Scheduled for pickup", "Container loaded", "Quote provided",
	"Delivered to consignee", "Currently unloading and loading at facility", "Facility transfer in progress",
	"In transit to destination", "Arrived at destination", "Out for delivery", "Attempted delivery",
	"Rescheduled delivery", "Held at facility", "Customs clearance", "Documentation review",
	"Loading completed", "Unloading in progress", "Quality inspection", "Temperature monitoring",
	"Security screening", "Weight verification", "Route optimization", "Driver assigned",
}

var pieceCounts = []string{
	"50 pallets", "25 boxes", "100 containers", "15 pallets", "75 crates", "120 pallets", "200 boxes",
	"30 pallets", "80 boxes", "150 containers", "40 pallets", "90 boxes", "180 containers", "60 pallets",
	"110 boxes", "220 containers", "70 pallets", "130 boxes", "250 containers", "85 pallets",
}

type cityEntry struct {
	city, state, zip string
}

var cities = []cityEntry{
	{"New York", "NY", "10001"}, {"Los Angeles", "CA", "90210"}, {"Chicago", "IL", "60601"},
	{"Houston", "TX", "77001"}, {"Phoenix", "AZ", "85001"}, {"Philadelphia", "PA", "19101"},
	{"San Antonio", "TX", "78201"}, {"San Diego", "CA", "92101"}, {"Dallas", "TX", "75201"},
	{"San Jose", "CA", "95101"}, {"Austin", "TX", "73301"}, {"Jacksonville", "FL", "32099"},
	{"Fort Worth", "TX", "76101"}, {"Columbus", "OH", "43201"}, {"Charlotte", "NC", "28201"},
	{"San Francisco", "CA", "94101"}, {"Indianapolis", "IN", "46201"}, {"Seattle", "WA", "98101"},
	{"Denver", "CO", "80201"}, {"Washington", "DC", "20001"}, {"Boston", "MA", "02101"},
	{"El Paso", "TX", "79901"}, {"Nashville", "TN", "37201"}, {"Detroit", "MI", "48201"},
	{"Oklahoma City", "OK", "73101"}, {"Portland", "OR", "97201"}, {"Las Vegas", "NV", "89101"},
	{"Memphis", "TN", "38101"}, {"Louisville", "KY", "40201"}, {"Baltimore", "MD", "21201"},
	{"Milwaukee", "WI", "53201"}, {"Albuquerque", "NM", "87101"}, {"Tucson", "AZ", "85701"},
	{"Fresno", "CA", "93650"}, {"Sacramento", "CA", "94203"}, {"Mesa", "AZ", "85201"},
	{"Kansas City", "MO", "64101"}, {"Atlanta", "GA", "30301"}, {"Miami", "FL", "33101"},
	{"Cleveland", "OH", "44101"}, {"Pittsburgh", "PA", "15201"},
}

var streets = []string{
	"Industrial Blvd", "Port Ave", "Harbor St", "Innovation Dr", "Dock Rd", "Factory Blvd", "Distribution Dr",
	"Warehouse Dr", "Trade Center", "Tech Park", "Port Terminal", "Retail Plaza", "Business Center",
	"Commerce St", "Transport Ave", "Logistics Blvd", "Freight Way", "Shipping Ln", "Express Dr",
	"Delivery Rd", "Supply Chain Blvd", "Operations Ave", "Distribution Center", "Fulfillment Center",
}

var shipperNames = []string{
	"Acme Corp", "Tech Solutions", "Global Manufacturing", "Retail Plus", "Food Services Inc",
	"Industrial Supply Co", "Metro Transport LLC", "Coastal Shipping Inc", "Mountain Express Corp",
	"Desert Logistics Group", "Urban Freight Systems", "Rural Transport Co", "Express Delivery Inc",
	"Premium Shipping LLC", "Standard Freight Corp", "Quick Logistics Inc", "Reliable Transport Co",
	"Fast Track Shipping", "Elite Logistics Group", "Ocean Freight Co", "Steel City Transport",
}

var consigneeNames = []string{
	"Delta Industries", "Omega Solutions", "Prime Manufacturing", "Elite Retail Corp", "Fresh Food Co",
	"Advanced Supply Inc", "City Transport LLC", "Pacific Shipping Corp", "Peak Express Inc",
	"Arid Logistics Group", "Metro Freight Systems", "Country Transport Co", "Swift Delivery Inc",
	"Premium Logistics LLC", "Standard Transport Corp", "Rapid Logistics Inc", "Trusted Transport Co",
	"Express Track Shipping", "Superior Logistics Group", "Atlantic Freight Co", "Iron City Transport",
}

// Generate produces count random shipments with load numbers starting at
// 2024000+startIndex. A fixed seed yields a reproducible dataset.
func Generate(count, startIndex int, seed int64) []models.Shipment {
	r := rand.New(rand.NewSource(seed))
	shipments := make([]models.Shipment, 0, count)

	for i := startIndex; i < startIndex+count; i++ {
		shipperCity := cities[r.Intn(len(cities))]
		consigneeCity := cities[r.Intn(len(cities))]

		pickup := time.Date(2024, 1, r.Intn(30)+1, 0, 0, 0, 0, time.UTC)
		delivery := pickup.AddDate(0, 0, r.Intn(7)+1)

		cost := float64(r.Intn(5000) + 500)
		margin := float64(r.Intn(1000) + 100)
		baseTemp := r.Intn(60) + 20
		tempRange := r.Intn(15) + 5

		edited := time.Date(2024, 1, r.Intn(30)+1, r.Intn(24), r.Intn(60), 0, 0, time.UTC)

		s := models.Shipment{
			ID:         fmt.Sprintf("%d", i),
			LoadNumber: 2024000 + i,
			Customer:   customers[r.Intn(len(customers))],
			ShipperAddress: fmt.Sprintf("%s - %d %s, %s, %s %s",
				shipperNames[r.Intn(len(shipperNames))], r.Intn(999)+1, streets[r.Intn(len(streets))],
				shipperCity.city, shipperCity.state, shipperCity.zip),
			ConsigneeAddress: fmt.Sprintf("%s - %d %s, %s, %s %s",
				consigneeNames[r.Intn(len(consigneeNames))], r.Intn(999)+1, streets[r.Intn(len(streets))],
				consigneeCity.city, consigneeCity.state, consigneeCity.zip),
			AppointmentStatus:  appointmentStatuses[r.Intn(len(appointmentStatuses))],
			Priority:           priorities[r.Intn(len(priorities))],
			PickupDate:         pickup.Format("2006-01-02"),
			EstimatedDelivery:  delivery.Format("2006-01-02"),
			Carrier:            carriers[r.Intn(len(carriers))],
			PORef:              fmt.Sprintf("PO-2024-%03d", i),
			Cost:               cost,
			MaxBuy:             float64(r.Intn(4000) + 400),
			TargetRate:         float64(r.Intn(6000) + 600),
			Billed:             cost + margin,
			Margin:             margin,
			Weight:             r.Intn(15000) + 1000,
			Miles:              r.Intn(1000) + 50,
			RegionGroup:        regions[r.Intn(len(regions))],
			ProductDescription: productDescriptions[r.Intn(len(productDescriptions))],
			Mode:               models.AllModes[r.Intn(len(models.AllModes))],
			Equipment:          equipmentTypes[r.Intn(len(equipmentTypes))],
			Temperature:        models.TemperatureRange{Min: baseTemp, Max: baseTemp + tempRange},
			LastTrackingNote:   trackingNotes[r.Intn(len(trackingNotes))],
			LastEdited:         edited.Format("2006-01-02 3:04 PM"),
			CustomerSalesRep:   salesReps[r.Intn(len(salesReps))],
			CarrierSalesRep:    salesReps[r.Intn(len(salesReps))],
			AssignedTo:         assignedTeams[r.Intn(len(assignedTeams))],
			PieceCount:         pieceCounts[r.Intn(len(pieceCounts))],
			Status:             models.AllStatuses[r.Intn(len(models.AllStatuses))],
		}
		if r.Float64() > 0.3 {
			s.Documents.BOL = fmt.Sprintf("BOL-2024-%03d.pdf", i)
		}
		if r.Float64() > 0.4 {
			s.Documents.POD = fmt.Sprintf("POD-2024-%03d.pdf", i)
		}
		if r.Float64() > 0.5 {
			s.Documents.Invoice = fmt.Sprintf("INV-2024-%03d.pdf", i)
		}
		shipments = append(shipments, s)
	}

	return shipments
}

// Shipments returns the stock dataset: seven fixed loads followed by count
// generated ones. The fixed rows give demos and tests stable anchors.
func Shipments(count int) []models.Shipment {
	fixed := fixedShipments()
	return append(fixed, Generate(count, len(fixed)+1, 2024)...)
}

func fixedShipments() []models.Shipment {
	return []models.Shipment{
		{
			ID: "1", LoadNumber: 2024001, Customer: "ABC Manufacturing",
			ShipperAddress:    "Acme Corp - 123 Industrial Blvd, Detroit, MI 48201",
			ConsigneeAddress:  "Delta Industries - 456 Warehouse Dr, Chicago, IL 60601",
			AppointmentStatus: models.AppointmentConfirmed, Priority: models.PriorityHot,
			PickupDate: "2024-01-15", EstimatedDelivery: "2024-01-17",
			Carrier: "FastFreight Inc", PORef: "PO-2024-001",
			Cost: 2500, MaxBuy: 2000, TargetRate: 3200, Billed: 3000, Margin: 500,
			Weight: 5000, Miles: 300, RegionGroup: "Midwest",
			ProductDescription: "Automotive parts", Mode: models.ModeLTL,
			Equipment: "Van", Temperature: models.TemperatureRange{Min: 68, Max: 78},
			LastTrackingNote: "Picked up from shipper", LastEdited: "2024-01-15 10:30 AM",
			CustomerSalesRep: "John Smith", CarrierSalesRep: "Mike Johnson",
			AssignedTo: "Dispatch Team", PieceCount: "50 pallets", Status: models.StatusInTransit,
			Documents: models.Documents{BOL: "BOL-2024-001.pdf", POD: "POD-2024-001.pdf", Invoice: "INV-2024-001.pdf"},
		},
		{
			ID: "2", LoadNumber: 2024002, Customer: "XYZ Logistics",
			ShipperAddress:    "Tech Solutions - 789 Port Ave, Los Angeles, CA 90210",
			ConsigneeAddress:  "Omega Solutions - 321 Distribution Center, Phoenix, AZ 85001",
			AppointmentStatus: models.AppointmentPending, Priority: models.PriorityStandard,
			PickupDate: "2024-01-16", EstimatedDelivery: "2024-01-18",
			Carrier: "WestCoast Transport", PORef: "PO-2024-002",
			Cost: 1800, MaxBuy: 1500, TargetRate: 2400, Billed: 2200, Margin: 400,
			Weight: 3000, Miles: 400, RegionGroup: "West Coast",
			ProductDescription: "Electronics", Mode: models.ModeFTL,
			Equipment: "Reefer", Temperature: models.TemperatureRange{Min: 38, Max: 48},
			LastTrackingNote: "Scheduled for pickup", LastEdited: "2024-01-16 09:15 AM",
			CustomerSalesRep: "Sarah Wilson", CarrierSalesRep: "David Brown",
			AssignedTo: "Sales Team", PieceCount: "25 boxes", Status: models.StatusBooked,
			Documents: models.Documents{BOL: "BOL-2024-002.pdf"},
		},
		{
			ID: "3", LoadNumber: 2024003, Customer: "Global Imports",
			ShipperAddress:    "Global Manufacturing - 555 Harbor St, Miami, FL 33101",
			ConsigneeAddress:  "Prime Manufacturing - 777 Trade Center, Atlanta, GA 30301",
			AppointmentStatus: models.AppointmentConfirmed, Priority: models.PriorityHot,
			PickupDate: "2024-01-17", EstimatedDelivery: "2024-01-19",
			Carrier: "Southeast Express", PORef: "PO-2024-003",
			Cost: 3200, MaxBuy: 2800, TargetRate: 4000, Billed: 3800, Margin: 600,
			Weight: 7500, Miles: 600, RegionGroup: "Southeast",
			ProductDescription: "Import goods", Mode: models.ModeIntermodal,
			Equipment: "Flatbed", Temperature: models.TemperatureRange{Min: 80, Max: 95},
			LastTrackingNote: "Container loaded", LastEdited: "2024-01-17 14:20 PM",
			CustomerSalesRep: "Lisa Davis", CarrierSalesRep: "Tom Wilson",
			AssignedTo: "Operations Team", PieceCount: "100 containers", Status: models.StatusLoading,
			Documents: models.Documents{BOL: "BOL-2024-003.pdf"},
		},
		{
			ID: "4", LoadNumber: 2024004, Customer: "Tech Solutions",
			ShipperAddress:    "Tech Solutions - 888 Innovation Dr, Austin, TX 73301",
			ConsigneeAddress:  "Elite Retail Corp - 999 Tech Park, Dallas, TX 75201",
			AppointmentStatus: models.AppointmentRequested, Priority: models.PriorityStandard,
			PickupDate: "2024-01-18", EstimatedDelivery: "2024-01-19",
			Carrier: "Texas Transport", PORef: "PO-2024-004",
			Cost: 1200, MaxBuy: 1000, TargetRate: 1800, Billed: 1500, Margin: 300,
			Weight: 2000, Miles: 200, RegionGroup: "Texas",
			ProductDescription: "Computer equipment", Mode: models.ModeAir,
			Equipment: "Van", Temperature: models.TemperatureRange{Min: 65, Max: 75},
			LastTrackingNote: "Quote provided", LastEdited: "2024-01-18 11:45 AM",
			CustomerSalesRep: "Mark Johnson", CarrierSalesRep: "Amy Chen",
			AssignedTo: "Quote Team", PieceCount: "15 pallets", Status: models.StatusQuoted,
		},
		{
			ID: "5", LoadNumber: 2024005, Customer: "Ocean Freight Co",
			ShipperAddress:    "Ocean Freight Co - 444 Dock Rd, Seattle, WA 98101",
			ConsigneeAddress:  "Fresh Food Co - 666 Port Terminal, Portland, OR 97201",
			AppointmentStatus: models.AppointmentConfirmed, Priority: models.PriorityStandard,
			PickupDate: "2024-01-19", EstimatedDelivery: "2024-01-21",
			Carrier: "Pacific Shipping", PORef: "PO-2024-005",
			Cost: 4500, MaxBuy: 4000, TargetRate: 5800, Billed: 5200, Margin: 700,
			Weight: 10000, Miles: 175, RegionGroup: "Northwest",
			ProductDescription: "Marine equipment", Mode: models.ModeDrayage,
			Equipment: "Reefer", Temperature: models.TemperatureRange{Min: 32, Max: 42},
			LastTrackingNote: "Delivered to consignee", LastEdited: "2024-01-21 16:30 PM",
			CustomerSalesRep: "Rachel Green", CarrierSalesRep: "Chris Lee",
			AssignedTo: "Delivery Team", PieceCount: "75 crates", Status: models.StatusDelivered,
			Documents: models.Documents{BOL: "BOL-2024-005.pdf", POD: "POD-2024-005.pdf", Invoice: "INV-2024-005.pdf"},
		},
		{
			ID: "6", LoadNumber: 2024006, Customer: "Industrial Supply",
			ShipperAddress:    "Industrial Supply Co - 777 Factory Blvd, Pittsburgh, PA 15201",
			ConsigneeAddress:  "Advanced Supply Inc - 888 Warehouse Ave, Cleveland, OH 44101",
			AppointmentStatus: models.AppointmentConfirmed, Priority: models.PriorityHot,
			PickupDate: "2024-01-22", EstimatedDelivery: "2024-01-23",
			Carrier: "Steel City Transport", PORef: "PO-2024-006",
			Cost: 2800, MaxBuy: 2400, TargetRate: 3600, Billed: 3400, Margin: 600,
			Weight: 8000, Miles: 150, RegionGroup: "Northeast",
			ProductDescription: "Industrial equipment", Mode: models.ModeLTL,
			Equipment: "Flatbed", Temperature: models.TemperatureRange{Min: 70, Max: 85},
			LastTrackingNote: "Currently unloading and loading at facility", LastEdited: "2024-01-22 11:45 AM",
			CustomerSalesRep: "Mark Thompson", CarrierSalesRep: "Jennifer Adams",
			AssignedTo: "Operations Team", PieceCount: "120 pallets", Status: models.StatusLoadingUnloading,
			Documents: models.Documents{BOL: "BOL-2024-006.pdf"},
		},
		{
			ID: "7", LoadNumber: 2024007, Customer: "Retail Distribution",
			ShipperAddress:    "Retail Plus - 999 Distribution Dr, Memphis, TN 38101",
			ConsigneeAddress:  "Elite Retail Corp - 111 Retail Plaza, Nashville, TN 37201",
			AppointmentStatus: models.AppointmentRequested, Priority: models.PriorityStandard,
			PickupDate: "2024-01-23", EstimatedDelivery: "2024-01-24",
			Carrier: "Tennessee Express", PORef: "PO-2024-007",
			Cost: 1600, MaxBuy: 1300, TargetRate: 2200, Billed: 2000, Margin: 400,
			Weight: 4000, Miles: 220, RegionGroup: "Southeast",
			ProductDescription: "Retail merchandise", Mode: models.ModeFTL,
			Equipment: "Van", Temperature: models.TemperatureRange{Min: 65, Max: 78},
			LastTrackingNote: "Facility transfer in progress", LastEdited: "2024-01-23 09:30 AM",
			CustomerSalesRep: "Amanda Foster", CarrierSalesRep: "Robert Clark",
			AssignedTo: "Dispatch Team", PieceCount: "200 boxes", Status: models.StatusLoadingUnloading,
			Documents: models.Documents{BOL: "BOL-2024-007.pdf"},
		},
	}
}
