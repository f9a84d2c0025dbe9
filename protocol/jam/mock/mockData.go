package mock_jam

// JamQuoteResponse is a gasless USDT -> WETH quote on arbitrum.
const JamQuoteResponse = `
{
	"type": "121",
	"status": "Success",
	"quoteId": "4d5f0d3c-7ab2-4c48-8d6e-5c1fa2b2e0a1",
	"chainId": 42161,
	"approvalType": "Standard",
	"nativeToken": "ETH",
	"taker": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
	"receiver": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
	"expiry": 1760110167,
	"slippage": 0,
	"gasFee": {
		"native": "1450000000000",
		"usd": 0.0036
	},
	"buyTokens": {
		"0x82aF49447D8a07e3bd95BD0d56f35241523fBab1": {
			"amount": "4012345678901234",
			"decimals": 18,
			"priceUsd": 2490.5,
			"symbol": "WETH",
			"price": 0.00040123,
			"priceBeforeFee": 0.00040131,
			"amountBeforeFee": "4013100000000000",
			"deltaFromExpected": 0.0001
		}
	},
	"sellTokens": {
		"0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9": {
			"amount": "10000000",
			"decimals": 6,
			"priceUsd": 1.0,
			"symbol": "USDT",
			"price": 2492.3,
			"priceBeforeFee": 2491.8
		}
	},
	"settlementAddress": "0xbeb0b0623f66bE8cE162EbDfA2ec543A522F4ea6",
	"approvalTarget": "0xC5a350853E4e36b73EB0C24aaA4b8816C9A3579a",
	"requiredSignatures": [],
	"hooksHash": "0x0000000000000000000000000000000000000000000000000000000000000000",
	"toSign": {
		"taker": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"receiver": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"expiry": 1760110167,
		"exclusivityDeadline": 1760110137,
		"nonce": "5",
		"executor": "0xbEbEbEb035351f58602E0C1C8B59ECBfF5d5f47b",
		"partnerInfo": "0",
		"sellTokens": ["0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9"],
		"buyTokens": ["0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"],
		"sellAmounts": ["10000000"],
		"buyAmounts": ["4012345678901234"],
		"hooksHash": "0x0000000000000000000000000000000000000000000000000000000000000000"
	},
	"solver": "🦊"
}`

// JamQuoteV1Response carries the fields of the first order schema.
const JamQuoteV1Response = `
{
	"type": "121",
	"status": "Success",
	"quoteId": "91c7e1b4-1b3e-4e53-9b55-0d8d2a8d77a5",
	"chainId": 42161,
	"approvalType": "Standard",
	"taker": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
	"receiver": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
	"expiry": 1760110167,
	"buyTokens": {},
	"sellTokens": {},
	"hooksHash": "0x0000000000000000000000000000000000000000000000000000000000000000",
	"toSign": {
		"taker": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"receiver": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"expiry": 1760110167,
		"nonce": "5",
		"executor": "0xbEbEbEb035351f58602E0C1C8B59ECBfF5d5f47b",
		"minFillPercent": 100,
		"hooksHash": "0x0000000000000000000000000000000000000000000000000000000000000000",
		"sellTokens": ["0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9", "0xaf88d065e77c8cC2239327C5EDb3A432268e5831"],
		"buyTokens": ["0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"],
		"sellAmounts": ["300000", "200000"],
		"buyAmounts": ["200000000000000"],
		"sellNFTIds": [],
		"buyNFTIds": [],
		"sellTokenTransfers": "0x0000",
		"buyTokenTransfers": "0x00"
	},
	"solver": "🦊"
}`
