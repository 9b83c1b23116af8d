package repository

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"freightdash/filter"
	"freightdash/models"
)

type PostgresShipmentRepo struct {
	DB *sql.DB
}

func NewPostgresShipmentRepo(db *sql.DB) *PostgresShipmentRepo {
	return &PostgresShipmentRepo{DB: db}
}

const shipmentColumns = `
	id, load_number, customer, shipper_address, consignee_address,
	appointment_status, priority, pickup_date, estimated_delivery,
	carrier, po_ref, cost, max_buy, target_rate, billed, margin,
	weight, miles, region_group, product_description, mode, equipment,
	temp_min, temp_max, last_tracking_note, last_edited,
	customer_sales_rep, carrier_sales_rep, assigned_to, piece_count,
	status, doc_bol, doc_pod, doc_invoice`

func scanShipment(row interface{ Scan(...interface{}) error }) (*models.Shipment, error) {
	var s models.Shipment
	var bol, pod, inv sql.NullString
	err := row.Scan(
		&s.ID, &s.LoadNumber, &s.Customer, &s.ShipperAddress, &s.ConsigneeAddress,
		&s.AppointmentStatus, &s.Priority, &s.PickupDate, &s.EstimatedDelivery,
		&s.Carrier, &s.PORef, &s.Cost, &s.MaxBuy, &s.TargetRate, &s.Billed, &s.Margin,
		&s.Weight, &s.Miles, &s.RegionGroup, &s.ProductDescription, &s.Mode, &s.Equipment,
		&s.Temperature.Min, &s.Temperature.Max, &s.LastTrackingNote, &s.LastEdited,
		&s.CustomerSalesRep, &s.CarrierSalesRep, &s.AssignedTo, &s.PieceCount,
		&s.Status, &bol, &pod, &inv,
	)
	if err != nil {
		return nil, err
	}
	s.Documents = models.Documents{BOL: bol.String, POD: pod.String, Invoice: inv.String}
	return &s, nil
}

// List narrows on status and mode in SQL, then runs the full filter engine
// over the result; SQL cannot express predicates like zip-run extraction with
// fail-open semantics, so the engine stays the authority.
func (r *PostgresShipmentRepo) List(filters models.FilterOptions) ([]models.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipment`
	var args []interface{}
	where := ""

	if len(filters.ShipmentStatus) > 0 {
		statuses := make([]string, len(filters.ShipmentStatus))
		for i, st := range filters.ShipmentStatus {
			statuses[i] = string(st)
		}
		args = append(args, pq.Array(statuses))
		where = " WHERE status = ANY($1)"
	}
	if len(filters.ShipmentMode) > 0 {
		modes := make([]string, len(filters.ShipmentMode))
		for i, m := range filters.ShipmentMode {
			modes[i] = string(m)
		}
		args = append(args, pq.Array(modes))
		if where == "" {
			where = " WHERE mode = ANY($1)"
		} else {
			where += " AND mode = ANY($2)"
		}
	}

	rows, err := r.DB.Query(query+where+" ORDER BY load_number", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return filter.Shipments(list, filters), nil
}

func (r *PostgresShipmentRepo) GetByID(id string) (*models.Shipment, error) {
	row := r.DB.QueryRow(`SELECT `+shipmentColumns+` FROM shipment WHERE id = $1`, id)
	s, err := scanShipment(row)
	if err == sql.ErrNoRows {
		return nil, ErrShipmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *PostgresShipmentRepo) Create(s *models.Shipment) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.LoadNumber == 0 {
		if err := r.DB.QueryRow(
			`SELECT COALESCE(MAX(load_number), 2024000) + 1 FROM shipment`,
		).Scan(&s.LoadNumber); err != nil {
			return err
		}
	}
	_, err := r.DB.Exec(`
		INSERT INTO shipment (`+shipmentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,
		        $18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,
		        NULLIF($32,''),NULLIF($33,''),NULLIF($34,''))`,
		s.ID, s.LoadNumber, s.Customer, s.ShipperAddress, s.ConsigneeAddress,
		s.AppointmentStatus, s.Priority, s.PickupDate, s.EstimatedDelivery,
		s.Carrier, s.PORef, s.Cost, s.MaxBuy, s.TargetRate, s.Billed, s.Margin,
		s.Weight, s.Miles, s.RegionGroup, s.ProductDescription, s.Mode, s.Equipment,
		s.Temperature.Min, s.Temperature.Max, s.LastTrackingNote, s.LastEdited,
		s.CustomerSalesRep, s.CarrierSalesRep, s.AssignedTo, s.PieceCount,
		s.Status, s.Documents.BOL, s.Documents.POD, s.Documents.Invoice,
	)
	return err
}

func (r *PostgresShipmentRepo) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM shipment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrShipmentNotFound
	}
	return nil
}

func (r *PostgresShipmentRepo) BulkUpdateStatus(ids []string, status models.ShipmentStatus) error {
	_, err := r.DB.Exec(`UPDATE shipment SET status = $1 WHERE id = ANY($2)`,
		string(status), pq.Array(ids))
	return err
}

func (r *PostgresShipmentRepo) UpdateDocuments(id string, docs models.Documents) error {
	res, err := r.DB.Exec(`
		UPDATE shipment
		SET doc_bol = NULLIF($1,''), doc_pod = NULLIF($2,''), doc_invoice = NULLIF($3,'')
		WHERE id = $4`,
		docs.BOL, docs.POD, docs.Invoice, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrShipmentNotFound
	}
	return nil
}
