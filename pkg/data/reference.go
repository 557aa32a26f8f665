package data

// Static reference text served by get-schema and get-examples. Hosts parse
// and display this text as-is; keep it byte-stable.

const databaseSchema = `
CREATE EXTERNAL TABLE transactions(
    hash string,
    nonce bigint,
    block_hash string,
    block_number bigint,
    block_timestamp timestamp,
    date string,
    transaction_index bigint,
    from_address string,
    to_address string,
    value double,
    gas bigint,
    gas_price bigint,
    input string,
    max_fee_per_gas bigint,
    max_priority_fee_per_gas bigint,
    transaction_type bigint
) PARTITIONED BY (date string)
ROW FORMAT SERDE 'org.apache.hadoop.hive.ql.io.parquet.serde.ParquetHiveSerDe'
STORED AS INPUTFORMAT 'org.apache.hadoop.hive.ql.io.parquet.MapredParquetInputFormat'
OUTPUTFORMAT 'org.apache.hadoop.hive.ql.io.parquet.MapredParquetOutputFormat';

CREATE EXTERNAL TABLE token_transfers(
    token_address string,
    from_address string,
    to_address string,
    value double,
    transaction_hash string,
    log_index bigint,
    block_timestamp timestamp,
    date string,
    block_number bigint,
    block_hash string
) PARTITIONED BY (date string)
ROW FORMAT SERDE 'org.apache.hadoop.hive.ql.io.parquet.serde.ParquetHiveSerDe'
STORED AS INPUTFORMAT 'org.apache.hadoop.hive.ql.io.parquet.MapredParquetInputFormat'
OUTPUTFORMAT 'org.apache.hadoop.hive.ql.io.parquet.MapredParquetOutputFormat';
`

const queryExamples = `
Common Query Examples:

1. Find Most Active Addresses in Last 7 Days:
WITH address_activity AS (
    SELECT
        from_address AS address,
        COUNT(*) AS tx_count
    FROM
        eth.transactions
    WHERE date_parse(date, '%Y-%m-%d') >= date_add('day', -7, current_date)
    GROUP BY
        from_address
    UNION ALL
    SELECT
        to_address AS address,
        COUNT(*) AS tx_count
    FROM
        eth.transactions
    WHERE
        date_parse(date, '%Y-%m-%d') >= date_add('day', -7, current_date)
    GROUP BY
        to_address
)
SELECT
    address,
    SUM(tx_count) AS total_transactions
FROM
    address_activity
GROUP BY
    address
ORDER BY
    total_transactions DESC
LIMIT 10;

2. Analyze Address Transaction Statistics (Last 30 Days):
WITH recent_transactions AS (
    SELECT
        from_address,
        to_address,
        value,
        block_timestamp,
        CASE
            WHEN from_address = :address THEN 'outgoing'
            WHEN to_address = :address THEN 'incoming'
            ELSE 'other'
        END AS transaction_type
    FROM eth.transactions
    WHERE date >= date_format(date_add('day', -30, current_date), '%Y-%m-%d')
        AND (from_address = :address OR to_address = :address)
)
SELECT
    transaction_type,
    COUNT(*) AS transaction_count,
    SUM(CASE WHEN transaction_type = 'outgoing' THEN value ELSE 0 END) AS total_outgoing_value,
    SUM(CASE WHEN transaction_type = 'incoming' THEN value ELSE 0 END) AS total_incoming_value
FROM recent_transactions
GROUP BY transaction_type;
`

// DatabaseSchema returns the DDL describing the queryable tables.
func DatabaseSchema() string {
	return databaseSchema
}

// QueryExamples returns example queries for the queryable tables.
func QueryExamples() string {
	return queryExamples
}
