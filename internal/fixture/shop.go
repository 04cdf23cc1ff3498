package fixture

import "github.com/sebkeim/insrcdata"

// Client is a row of the client table.
type Client struct {
	name string
}

func (c *Client) Name() string { return c.name }

// Products returns the products bought by the client, in transaction order.
func (c *Client) Products() []insrcdata.Ref[Product] {
	var refs []insrcdata.Ref[Product]
	for pos := range TransactionJunction.Related(insrcdata.Left, ClientTable.PosOf(c)) {
		refs = append(refs, ProductTable.At(pos))
	}
	return refs
}

// Product is a row of the product table.
type Product struct {
	name string
}

func (p *Product) Name() string { return p.name }

// Clients returns the clients who bought the product.
func (p *Product) Clients() []insrcdata.Ref[Client] {
	var refs []insrcdata.Ref[Client]
	for pos := range TransactionJunction.Related(insrcdata.Right, ProductTable.PosOf(p)) {
		refs = append(refs, ClientTable.At(pos))
	}
	return refs
}

// Transaction is a row of the client/product junction table.
type Transaction struct {
	client  uint8
	product uint8
}

func (t *Transaction) Client() insrcdata.Ref[Client]   { return ClientTable.At(int(t.client)) }
func (t *Transaction) Product() insrcdata.Ref[Product] { return ProductTable.At(int(t.product)) }

// ClientTable holds shop clients.
var ClientTable = insrcdata.NewTable("client", []Client{
	{"John"},
	{"Alix"},
	{"David"},
})

// ProductTable holds shop products.
var ProductTable = insrcdata.NewTable("product", []Product{
	{"Apple"},
	{"Banana"},
	{"Peach"},
	{"Cherry"},
})

// TransactionTable links clients to the products they bought.
var TransactionTable = insrcdata.NewTable("transaction", []Transaction{
	{0, 0},
	{0, 1},
	{1, 0},
	{1, 2},
	{2, 0},
	{2, 1},
	{2, 2},
})

// TransactionJunction resolves the client/product relation both ways.
var TransactionJunction = insrcdata.NewJunction(
	insrcdata.NewIndex(TransactionTable, "transaction.client",
		func(t *Transaction) int { return int(t.client) },
		[]uint32{
			0, 1, 2, 3, 4, 5, 6,
		}),
	insrcdata.NewIndex(TransactionTable, "transaction.product",
		func(t *Transaction) int { return int(t.product) },
		[]uint32{
			0, 2, 4, 1, 5, 3, 6,
		}),
)
